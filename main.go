package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/RichardKnop/machinery/v1"
	machineryconf "github.com/RichardKnop/machinery/v1/config"
	"github.com/dgrijalva/jwt-go"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/bitmark-inc/cityworks-api/api"
	"github.com/bitmark-inc/cityworks-api/background"
	"github.com/bitmark-inc/cityworks-api/external/geoinfo"
	"github.com/bitmark-inc/cityworks-api/external/objectstore"
	"github.com/bitmark-inc/cityworks-api/store"
)

var (
	server      *api.Server
	mongoClient *mongo.Client
	redisClient *redis.Client
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("cityworks")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

func main() {
	var configFile string

	initialCtx, cancelInitialization := context.WithCancel(context.Background())

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		if cancelInitialization != nil {
			log.Info("Cancelling initialization")
			cancelInitialization()
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if redisClient != nil {
			log.Info("Shutting down redis client")
			if err := redisClient.Close(); err != nil {
				log.Error(err)
			}
		}

		if mongoClient != nil {
			log.Info("Shutting down mongo store")
			if err := mongoClient.Disconnect(ctx); err != nil {
				log.Error(err)
			}
		}

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Release:          viper.GetString("server.version"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	// Load JWT private key
	jwtSecretByte, err := ioutil.ReadFile(viper.GetString("jwt.keyfile"))
	if err != nil {
		log.Panic(err)
	}
	jwtPrivateKey, err := jwt.ParseRSAPrivateKeyFromPEMWithPassword(jwtSecretByte, viper.GetString("jwt.password"))
	if err != nil {
		log.Panic(err)
	}
	log.WithField("prefix", "init").Info("Loaded global jwt key")

	// initialise mongodb connections
	opts := options.Client().ApplyURI(viper.GetString("mongo.conn"))
	opts.SetMaxPoolSize(viper.GetUint64("mongo.pool"))
	mongoClient, err = mongo.NewClient(opts)
	if nil != err {
		log.Panicf("create mongo client with error: %s", err)
	}

	err = mongoClient.Connect(initialCtx)
	if nil != err {
		log.Panicf("connect mongo database with error: %s", err)
	}
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	log.WithField("prefix", "init").Info("Connected mongo")

	// Init redis
	redisOpts, err := redis.ParseURL(viper.GetString("redis.conn"))
	if err != nil {
		log.Panicf("parse redis url with error: %s", err)
	}
	redisClient = redis.NewClient(redisOpts)
	tokenStore := store.NewTokenStore(redisClient)
	if err := tokenStore.Ping(initialCtx); err != nil {
		log.Panicf("connect redis with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Connected redis")

	var geoClient geoinfo.GeoInfo
	if key := viper.GetString("map.key"); key != "" {
		geoClient, err = geoinfo.New(key)
		if err != nil {
			log.Panic(err)
		}
		log.WithField("prefix", "init").Info("Initialized geocoding client")
	}

	var objects objectstore.ObjectStore
	if endpoint := viper.GetString("minio.endpoint"); endpoint != "" {
		objects, err = objectstore.New(initialCtx, objectstore.Config{
			Endpoint:  endpoint,
			AccessKey: viper.GetString("minio.access_key"),
			SecretKey: viper.GetString("minio.secret_key"),
			Bucket:    viper.GetString("minio.bucket"),
			Secure:    viper.GetBool("minio.secure"),
		})
		if err != nil {
			log.Panicf("connect minio with error: %s", err)
		}
		log.WithField("prefix", "init").Info("Connected object store")
	}

	var enqueuer api.ReportEnqueuer
	if viper.GetBool("background.enabled") {
		var conf = &machineryconf.Config{
			Broker:        viper.GetString("redis.conn"),
			DefaultQueue:  "cityworks_background",
			ResultBackend: viper.GetString("redis.conn"),
		}
		machineryServer, err := machinery.NewServer(conf)
		if err != nil {
			log.Panic(err)
		}
		enqueuer = background.NewQueue(machineryServer)
		log.WithField("prefix", "init").Info("Initialized background queue")
	}

	// Init http server
	server = api.NewServer(
		mongoStore,
		tokenStore,
		jwtPrivateKey,
		geoClient,
		objects,
		enqueuer)
	log.WithField("prefix", "init").Info("Initialized http server")

	// Remove initial context
	cancelInitialization = nil

	log.Fatal(server.Run(":" + viper.GetString("server.port")))
}
