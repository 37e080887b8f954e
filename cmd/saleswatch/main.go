package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/flarebot/saleswatch/internal/announce"
	"github.com/flarebot/saleswatch/internal/config"
	"github.com/flarebot/saleswatch/internal/handlers/cli"
	"github.com/flarebot/saleswatch/internal/infra/feed/hyperspace"
	mediagif "github.com/flarebot/saleswatch/internal/infra/media/gif"
	"github.com/flarebot/saleswatch/internal/infra/snapshot/yamlfile"
	"github.com/flarebot/saleswatch/internal/infra/social/twitter"
	redisstorage "github.com/flarebot/saleswatch/internal/infra/storage/redis"
	"github.com/flarebot/saleswatch/internal/marketdir"
	"github.com/flarebot/saleswatch/internal/pkg/logger"
	"github.com/flarebot/saleswatch/internal/pkg/resilience/retry"
	"github.com/flarebot/saleswatch/internal/pkg/transport/graphql"
	httptransport "github.com/flarebot/saleswatch/internal/pkg/transport/http"
	"github.com/flarebot/saleswatch/internal/salesfeed"
	"github.com/flarebot/saleswatch/internal/saleswatch"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading configuration: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	httpClient := httptransport.NewClient(httptransport.WithTimeout(30 * time.Second))

	gqlConn := graphql.NewClient(httpClient.StandardClient(), cfg.Hyperspace.Endpoint, cfg.Hyperspace.APIKey)
	hsClient := hyperspace.NewClient(gqlConn)

	marketDir := marketdir.New(hsClient, yamlfile.NewStore(cfg.SnapshotFile), marketdir.WithRetry(retry.New()))
	if err := marketDir.Regenerate(ctx); err != nil {
		logger.Warn(ctx, "regenerating marketplace snapshot failed, keeping any existing snapshot", "error", err)
	}

	feedOpts := []salesfeed.Option{
		salesfeed.WithPageSize(cfg.PageSize),
		salesfeed.WithMaxPages(cfg.MaxPages),
	}
	directory, err := marketDir.Load(ctx)
	if err != nil {
		logger.Warn(ctx, "loading marketplace snapshot failed, sales will carry no marketplace metadata", "error", err)
	} else {
		feedOpts = append(feedOpts, salesfeed.WithMarketplaceResolver(directory))
	}
	feedService := salesfeed.New(hsClient, cfg.ProjectID, feedOpts...)

	twitterClient := twitter.NewClient(twitter.Credentials{
		ConsumerKey:    cfg.Twitter.ConsumerKey,
		ConsumerSecret: cfg.Twitter.ConsumerSecret,
		AccessToken:    cfg.Twitter.AccessToken,
		AccessSecret:   cfg.Twitter.AccessSecret,
	}, cfg.Twitter.AccountHandle)

	announcer := announce.New(
		twitterClient,
		mediagif.NewFetcher(httpClient.StandardClient()),
		mediagif.NewTranscoder(),
		cfg.ProjectID,
		announce.WithFloorPriceSource(hsClient),
		announce.WithComposer(announce.MessageComposer{
			CollectionName: cfg.CollectionName,
			TopicTags:      cfg.TopicTags,
		}),
	)

	watchOpts := []saleswatch.Option{
		saleswatch.WithFetchInterval(time.Duration(cfg.FetchEverySeconds) * time.Second),
		saleswatch.WithTimestampFloor(cfg.FetchLimitSeconds),
	}

	// With Redis configured the persisted cursor replaces the read-back
	// watermark strategy entirely.
	var watermarks saleswatch.WatermarkSource = twitterClient
	if cfg.Redis.Addr != "" {
		redisClient, err := redisstorage.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
		if err != nil {
			logger.Fatal(ctx, "connecting to redis", "error", err)
		}
		defer redisClient.Close()

		cursor := redisClient.WatermarkCursor(cfg.ProjectID)
		watermarks = cursor
		watchOpts = append(watchOpts, saleswatch.WithWatermarkRecorder(cursor))
	}

	watchService := saleswatch.New(feedService, announcer, watermarks, watchOpts...)

	if err := cli.Run(ctx, watchService, marketDir); err != nil {
		logger.Fatal(ctx, "saleswatch exited with error", "error", err)
	}
}
