package main

import (
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// apiClient wraps a resty client bound to the configured server, attaching
// the session token when one is set.
type apiClient struct {
	rc *resty.Client
}

func client() *apiClient {
	rc := resty.New().
		SetBaseURL(apiFlag).
		SetHeader("Content-Type", "application/json").
		SetTimeout(30 * time.Second)
	if tokenFlag != "" {
		rc.SetAuthToken(tokenFlag)
	}
	return &apiClient{rc: rc}
}

func (c *apiClient) doGet(path string) ([]byte, error) {
	resp, err := c.rc.R().Get(path)
	return checked(resp, err)
}

func (c *apiClient) doPostJSON(path string, payload interface{}) ([]byte, error) {
	resp, err := c.rc.R().SetBody(payload).Post(path)
	return checked(resp, err)
}

func (c *apiClient) doDelete(path string) ([]byte, error) {
	resp, err := c.rc.R().Delete(path)
	return checked(resp, err)
}

func checked(resp *resty.Response, err error) ([]byte, error) {
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("http %d: %s", resp.StatusCode(), resp.String())
	}
	return resp.Body(), nil
}
