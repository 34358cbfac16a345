package query

import (
	"context"
	"strings"

	"PlayTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Builder 把列表查询统一成 filter + join + project + sort + paginate 五步
// 各资源的列表接口都走这一层 排序字段必须在白名单内 翻页参数统一归一化
type Builder struct {
	db       *gorm.DB
	allowed  map[string]bool
	sortExpr string
	page     int64
	pageSize int64
}

func New(db *gorm.DB, model interface{}, allowedSort ...string) *Builder {
	allowed := make(map[string]bool, len(allowedSort)+1)
	allowed[constants.DefaultSortField] = true
	for _, f := range allowedSort {
		allowed[f] = true
	}
	return &Builder{
		db:       db.Model(model),
		allowed:  allowed,
		sortExpr: constants.DefaultSortField + " DESC",
		page:     constants.DefaultPageNum,
		pageSize: constants.DefaultPageSize,
	}
}

func (b *Builder) Filter(cond string, args ...interface{}) *Builder {
	b.db = b.db.Where(cond, args...)
	return b
}

func (b *Builder) Join(join string, args ...interface{}) *Builder {
	b.db = b.db.Joins(join, args...)
	return b
}

func (b *Builder) Project(cols ...string) *Builder {
	b.db = b.db.Select(cols)
	return b
}

// SortBy 白名单之外的字段一律回落到默认排序（创建时间倒序）
func (b *Builder) SortBy(field, direction string) *Builder {
	b.sortExpr = ResolveSort(field, direction, b.allowed)
	return b
}

func (b *Builder) Paginate(page, pageSize int64) *Builder {
	b.page, b.pageSize = NormalizePage(page, pageSize)
	return b
}

// Find 先数总量再取当前页 查询失败和空结果是两种情况 由调用方区分处理
func (b *Builder) Find(ctx context.Context, dest interface{}) (int64, error) {
	var total int64
	db := b.db.WithContext(ctx)
	if err := db.Count(&total).Error; err != nil {
		return 0, errors.Wrapf(err, "query count failed,err:%v", err)
	}
	if err := db.Order(b.sortExpr).
		Limit(int(b.pageSize)).
		Offset(int((b.page - 1) * b.pageSize)).
		Find(dest).Error; err != nil {
		return 0, errors.Wrapf(err, "query find failed,err:%v", err)
	}
	return total, nil
}

// NormalizePage 页码从1开始 页大小有默认值和上限
func NormalizePage(page, pageSize int64) (int64, int64) {
	if page < 1 {
		page = constants.DefaultPageNum
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return page, pageSize
}

// ResolveSort direction兼容 asc/desc 和源接口里的 1/-1 两种写法
func ResolveSort(field, direction string, allowed map[string]bool) string {
	if field == "" || !allowed[field] {
		field = constants.DefaultSortField
	}
	dir := "DESC"
	switch strings.ToLower(direction) {
	case "asc", "1":
		dir = "ASC"
	case "desc", "-1", "":
	}
	return field + " " + dir
}
