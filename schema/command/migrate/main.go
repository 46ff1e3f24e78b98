package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/bitmark-inc/cityworks-api/schema"
)

func init() {
	viper.AutomaticEnv()
	viper.SetEnvPrefix("cityworks")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	indexer := schema.NewMongoDBIndexer(viper.GetString("mongo.conn"), viper.GetString("mongo.database"))
	indexer.IndexAll()

	log.WithField("database", viper.GetString("mongo.database")).Info("indexes created")
}
