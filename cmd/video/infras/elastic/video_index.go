package elastic

import (
	"context"
	"encoding/json"
	"strconv"

	"PlayTube.com/cmd/model"
	"PlayTube.com/pkg/constants"
	"PlayTube.com/pkg/errno"
	"github.com/olivere/elastic/v7"
	"github.com/pkg/errors"
)

type VideoDoc struct {
	VideoId     int64  `json:"video_id"`
	UserId      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	CoverUrl    string `json:"cover_url"`
	CreatedAt   string `json:"created_at"`
}

func IndexVideo(ctx context.Context, doc *VideoDoc) error {
	if esClient == nil {
		return nil
	}
	_, err := esClient.Index().
		Index(constants.VideoIndex).
		Id(strconv.FormatInt(doc.VideoId, 10)).
		BodyJson(doc).
		Refresh("true").
		Do(ctx)
	if err != nil {
		return errors.Wrapf(err, "index video doc failed,err:%v", err)
	}
	return nil
}

func DeleteVideoDoc(ctx context.Context, videoId int64) error {
	if esClient == nil {
		return nil
	}
	_, err := esClient.Delete().
		Index(constants.VideoIndex).
		Id(strconv.FormatInt(videoId, 10)).
		Refresh("true").
		Do(ctx)
	if err != nil && !elastic.IsNotFound(err) {
		return errors.Wrapf(err, "delete video doc failed,err:%v", err)
	}
	return nil
}

// SearchVideos 标题和简介上做模糊检索 返回按相关度排好序的视频id
func SearchVideos(ctx context.Context, keyword string, pageNum, pageSize int64) ([]int64, int64, error) {
	if esClient == nil {
		return nil, 0, errno.ServiceErr.WithMessage("search is unavailable")
	}
	query := elastic.NewMultiMatchQuery(keyword, "title", "description").
		Fuzziness("AUTO")
	result, err := esClient.Search().
		Index(constants.VideoIndex).
		Query(query).
		From(int((pageNum - 1) * pageSize)).
		Size(int(pageSize)).
		Do(ctx)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "search videos failed,err:%v", err)
	}
	ids := make([]int64, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc VideoDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		ids = append(ids, doc.VideoId)
	}
	return ids, result.TotalHits(), nil
}

// Autocomplete 根据标题前缀给出补全提示
func Autocomplete(ctx context.Context, prefix string, size int64) ([]*model.SearchSuggestion, error) {
	if esClient == nil {
		return []*model.SearchSuggestion{}, nil
	}
	query := elastic.NewMatchPhrasePrefixQuery("title", prefix)
	result, err := esClient.Search().
		Index(constants.VideoIndex).
		Query(query).
		Size(int(size)).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "autocomplete failed,err:%v", err)
	}
	suggestions := make([]*model.SearchSuggestion, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		var doc VideoDoc
		if err := json.Unmarshal(hit.Source, &doc); err != nil {
			continue
		}
		suggestions = append(suggestions, &model.SearchSuggestion{
			VideoId:  doc.VideoId,
			Title:    doc.Title,
			CoverUrl: doc.CoverUrl,
		})
	}
	return suggestions, nil
}
