package main

import (
	"net/http"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	chiadapter "github.com/awslabs/aws-lambda-go-api-proxy/chi"

	"github.com/prepwise/upsc-prep-lambda/internal/config"
	"github.com/prepwise/upsc-prep-lambda/internal/container"
	"github.com/prepwise/upsc-prep-lambda/internal/router"
)

func main() {
	c := container.New()

	r := router.New(router.RouterConfig{
		UserHandler:        c.UserContainer.Handler,
		QuestionHandler:    c.QuestionContainer.Handler,
		QuestionSetHandler: c.QuestionSetContainer.Handler,
		SessionHandler:     c.SessionContainer.Handler,
		VoiceMemoHandler:   c.VoiceMemoContainer.Handler,
	})

	if os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != "" {
		adapter := chiadapter.New(r)
		lambda.Start(adapter.ProxyWithContext)
		return
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	config.Logger().WithField("port", port).Info("starting HTTP server")
	if err := http.ListenAndServe(":"+port, r); err != nil {
		config.Logger().WithError(err).Fatal("server stopped")
	}
}
