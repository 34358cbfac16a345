package elastic

import (
	"context"

	"PlayTube.com/config"
	"PlayTube.com/pkg/constants"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/olivere/elastic/v7"
)

var esClient *elastic.Client

const videoMapping = `{
  "mappings": {
    "properties": {
      "video_id":    {"type": "long"},
      "user_id":     {"type": "long"},
      "title":       {"type": "text"},
      "description": {"type": "text"},
      "cover_url":   {"type": "keyword"},
      "created_at":  {"type": "keyword"}
    }
  }
}`

func Init() {
	var err error
	esClient, err = elastic.NewClient(
		elastic.SetURL(config.ConfigInfo.Elastic.Addr),
		elastic.SetSniff(false),
	)
	if err != nil {
		hlog.Error("Could not connect to elasticsearch : ", err)
		return
	}

	ctx := context.Background()
	exists, err := esClient.IndexExists(constants.VideoIndex).Do(ctx)
	if err != nil {
		hlog.Error("check video index failed : ", err)
		return
	}
	if !exists {
		if _, err := esClient.CreateIndex(constants.VideoIndex).BodyString(videoMapping).Do(ctx); err != nil {
			hlog.Error("create video index failed : ", err)
			return
		}
	}
	hlog.Info("Connect Elasticsearch Success")
}

// Available 搜索是可选依赖 ES没起来时列表接口回落到MySQL模糊查询
func Available() bool {
	return esClient != nil
}
