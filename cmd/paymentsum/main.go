package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/suparena/billingtotal"
	"github.com/suparena/billingtotal/aggregate"
	"github.com/suparena/billingtotal/billing"
	"github.com/suparena/billingtotal/config"
	"github.com/suparena/billingtotal/datastore/ddb"
	"github.com/suparena/billingtotal/handler"
	"github.com/suparena/billingtotal/storagemodels"
	"go.uber.org/zap"
)

var (
	versionFlag = flag.Bool("version", false, "Show version information")
	vFlag       = flag.Bool("v", false, "Show version information (short)")
	configPath  = flag.String("config", "", "Path to a YAML configuration file")
	invokeFlag  = flag.Bool("invoke", false, "Run the handler once and print the response instead of starting the Lambda runtime")
)

func main() {
	flag.Parse()

	if *versionFlag || *vFlag {
		info := billingtotal.GetVersionInfo()
		fmt.Printf("paymentsum version %s\n", info.Version)
		fmt.Printf("Git commit: %s\n", info.GitCommit)
		fmt.Printf("Build date: %s\n", info.BuildDate)
		fmt.Printf("Go version: %s\n", info.GoVersion)
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "configuration error: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync() //nolint:errcheck

	ctx := context.Background()
	h, err := newHandler(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("failed to build handler", zap.Error(err))
	}

	if *invokeFlag {
		resp, _ := h.Handle(ctx, nil)
		out, _ := json.MarshalIndent(resp, "", "  ")
		fmt.Println(string(out))
		if resp.StatusCode != 200 {
			os.Exit(1)
		}
		return
	}

	lambda.Start(h.Handle)
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	level, err := cfg.Level()
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(level)
	return zcfg.Build(zap.Fields(zap.String("table", cfg.TableName)))
}

// newHandler wires the DynamoDB scanner, the aggregator and the handler.
// The client is built once and reused by warm invocations.
func newHandler(ctx context.Context, cfg config.Config, logger *zap.Logger) (*handler.Handler, error) {
	scanner, err := ddb.NewDynamodbScanner(ctx, ddb.ClientOptions{
		Region:    cfg.Region,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		Endpoint:  cfg.Endpoint,
	}, cfg.TableName)
	if err != nil {
		return nil, err
	}
	logger.Debug("DynamoDB scanner initialized", zap.String("region", cfg.Region), zap.String("endpoint", cfg.Endpoint))

	agg := aggregate.New(scanner,
		storagemodels.WithPageSize(cfg.PageSize),
		storagemodels.WithConsistentRead(cfg.ConsistentRead),
		storagemodels.WithAttributes(cfg.BillingAttribute),
		storagemodels.WithProgressHandler(func(p storagemodels.ScanProgress) {
			logger.Debug("scan progress",
				zap.Int("pages", p.PagesProcessed),
				zap.Int64("items", p.ItemsProcessed),
				zap.Float64("itemsPerSecond", p.CurrentRate),
			)
		}),
	).WithParser(billing.Parser{
		Attribute:    cfg.BillingAttribute,
		PaymentField: cfg.PaymentField,
	})

	return handler.New(agg, logger), nil
}
