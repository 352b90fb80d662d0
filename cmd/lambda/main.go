// Package main serves the translation engine as an AWS Lambda function.
package main

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"codeberg.org/snonux/totaltranslate/internal/cli"
	"codeberg.org/snonux/totaltranslate/internal/processor"
)

var (
	once    sync.Once
	handler *Handler
	initErr error
)

func main() {
	lambda.Start(handleRequest)
}

func handleRequest(ctx context.Context, event json.RawMessage) (interface{}, error) {
	// The engine and its cache outlive single invocations of a warm instance
	once.Do(func() {
		cli.InitConfig("")
		config := cli.LoadConfig()

		log := cli.NewLogger(config)
		log.SetFormatter(&logrus.JSONFormatter{})

		engine, err := processor.BuildEngine(ctx, config, log)
		if err != nil {
			initErr = err
			return
		}
		handler = NewHandler(engine, log)
	})
	if initErr != nil {
		return nil, initErr
	}

	var req Request
	if err := json.Unmarshal(event, &req); err != nil {
		return nil, err
	}
	return handler.Handle(ctx, req), nil
}
