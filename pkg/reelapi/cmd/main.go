package main

import (
	"context"
	"flag"
	"log"
	"net/url"

	"reelview/pkg/reelapi"

	"github.com/k0kubun/pp"
	"resty.dev/v3"
)

func main() {
	baseURL := flag.String("api-url", reelapi.DefaultConfig.BaseURL, "backend base URL")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatal("usage: reelapi [-api-url URL] <post-id>")
	}

	client := reelapi.NewClient(&reelapi.ClientConfig{
		BaseURL:           *baseURL,
		Timeout:           reelapi.DefaultConfig.Timeout,
		TransportSettings: reelapi.DefaultConfig.TransportSettings,

		ResponseMiddlewares: []resty.ResponseMiddleware{func(_ *resty.Client, response *resty.Response) error {
			reqURL, err := url.Parse(response.Request.URL)
			if err != nil {
				return err
			}

			log.Printf("%s %s: %s [%s]", response.Request.Method, reqURL.Path, response.Status(), response.Duration())
			return nil
		}},
	})
	defer client.Close()

	post, err := client.GetPost(context.Background(), flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}

	pp.Printf("%+v\n", post)
}
