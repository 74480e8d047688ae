package azure

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/realniraj/aws-iam-identity-center-sync-script/internal/util"
	"go.uber.org/zap"
	"k8s.io/utils/env"
)

type Client struct {
	httpClient  *http.Client
	tokenClient *util.TokenClient
	config      Config
}

type Config struct {
	TenantId     string `json:"tenantId"`
	ClientId     string `json:"clientId"`
	ClientSecret string `json:"clientSecret"`
	BaseUrl      string `json:"baseUrl"`
	AuthBaseUrl  string `json:"authBaseUrl"`
}

func NewAzureClient(conf Config) *Client {
	if conf.BaseUrl == "" {
		conf.BaseUrl = "https://graph.microsoft.com"
	}
	if conf.AuthBaseUrl == "" {
		conf.AuthBaseUrl = "https://login.microsoftonline.com"
	}

	payload := &Client{
		httpClient: &http.Client{Timeout: time.Second * 30},
		config:     conf,
	}

	payload.tokenClient = util.NewTokenClient(payload.getNewToken)

	return payload
}

func (c *Client) RefreshAuth() error {
	envToken := env.GetString("ASYNC_AZURE_TOKEN", "")
	if envToken != "" {
		c.tokenClient.Token = util.NewBearerToken(envToken)
		return nil
	}

	err := c.tokenClient.RefreshAuth()
	return err
}

func (c *Client) getNewToken() (*util.RefreshAuthResponse, error) {
	reqPayload := url.Values{}
	reqPayload.Set("client_id", c.config.ClientId)
	reqPayload.Set("grant_type", "client_credentials")
	reqPayload.Set("scope", "https://graph.microsoft.com/.default")
	reqPayload.Set("client_secret", c.config.ClientSecret)

	req, err := http.NewRequest("POST", fmt.Sprintf("%s/%s/oauth2/v2.0/token", c.config.AuthBaseUrl, c.config.TenantId), strings.NewReader(reqPayload.Encode()))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != 200 {
		return nil, parseApiError(resp.StatusCode, rawData)
	}

	var tokenResponse *util.RefreshAuthResponse

	err = json.Unmarshal(rawData, &tokenResponse)
	if err != nil {
		return nil, err
	}

	return tokenResponse, nil
}

func (c *Client) prepareHttpRequest(req *http.Request) error {
	err := c.RefreshAuth()
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.tokenClient.Token.GetToken()))
	req.Header.Set("User-Agent", "aws-iam-identity-center-sync-script - github.com/realniraj/aws-iam-identity-center-sync-script")
	return nil
}

func (c *Client) HasTokenExpired() bool {
	return c.tokenClient.Token.IsExpired()
}

// do issues the request with a single retry on transport failure. HTTP error
// statuses are never retried, those are mapped by the callers.
func (c *Client) do(req *http.Request) (*http.Response, error) {
	var resp *http.Response

	operation := func() error {
		if req.GetBody != nil {
			body, err := req.GetBody()
			if err != nil {
				return backoff.Permanent(err)
			}
			req.Body = body
		}

		var err error
		resp, err = c.httpClient.Do(req)
		if err != nil {
			if req.Context().Err() != nil {
				return backoff.Permanent(err)
			}
			return err
		}

		return nil
	}

	err := backoff.Retry(operation, backoff.WithMaxRetries(backoff.NewExponentialBackOff(), 1))
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// FindServicePrincipalId resolves a service principal display name to its
// object id. Filtering on displayName with $count requires the eventual
// consistency header. If the tenant holds more than one principal with the
// same name, the first entry in the response wins.
func (c *Client) FindServicePrincipalId(ctx context.Context, displayName string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/v1.0/servicePrincipals", c.config.BaseUrl), nil)
	if err != nil {
		return "", err
	}
	err = c.prepareHttpRequest(req)
	if err != nil {
		return "", err
	}

	req.Header.Set("ConsistencyLevel", "eventual")

	urlQueryValues := req.URL.Query()
	urlQueryValues.Set("$filter", fmt.Sprintf("displayName eq '%s'", displayName))
	urlQueryValues.Set("$count", "true")
	req.URL.RawQuery = urlQueryValues.Encode()

	payload, err := DoRequest[ServicePrincipalsListResponse](c, req)
	if err != nil {
		return "", err
	}

	if len(payload.Value) == 0 {
		return "", ServicePrincipalNotFound.New(fmt.Sprintf("Service principal with display name '%s' not found", displayName))
	}

	if len(payload.Value) > 1 {
		util.Logger.Warn(fmt.Sprintf("Multiple service principals found with the name '%s'. Using the first one.", displayName), zap.Int("matches", len(payload.Value)))
	}

	return payload.Value[0].ID, nil
}

// FindFirstSyncJobId returns the id of the first synchronization job
// configured under the service principal. Only the first entry of the first
// page is considered, additional jobs or pages are ignored.
func (c *Client) FindFirstSyncJobId(ctx context.Context, servicePrincipalId string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", fmt.Sprintf("%s/beta/servicePrincipals/%s/synchronization/jobs", c.config.BaseUrl, servicePrincipalId), nil)
	if err != nil {
		return "", err
	}
	err = c.prepareHttpRequest(req)
	if err != nil {
		return "", err
	}

	payload, err := DoRequest[SynchronizationJobsListResponse](c, req)
	if err != nil {
		return "", err
	}

	if len(payload.Value) == 0 {
		return "", SyncJobNotFound.New(fmt.Sprintf("No synchronization job found for service principal ID '%s'", servicePrincipalId))
	}

	return payload.Value[0].ID, nil
}

// StartSyncJob issues the start action for the job. The API returns no body
// on success.
func (c *Client) StartSyncJob(ctx context.Context, servicePrincipalId string, jobId string) error {
	req, err := http.NewRequestWithContext(ctx, "POST", fmt.Sprintf("%s/beta/servicePrincipals/%s/synchronization/jobs/%s/start", c.config.BaseUrl, servicePrincipalId, jobId), nil)
	if err != nil {
		return err
	}
	err = c.prepareHttpRequest(req)
	if err != nil {
		return err
	}

	return DoRequestWithoutDeserialise(c, req)
}

func DoRequest[T any](client *Client, req *http.Request) (*T, error) {
	resp, err := client.do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseApiError(resp.StatusCode, rawData)
	}

	var payload *T

	err = json.Unmarshal(rawData, &payload)
	if err != nil {
		return nil, err
	}

	if payload == nil {
		return nil, errors.New("response body was empty")
	}

	return payload, nil
}

func DoRequestWithoutDeserialise(client *Client, req *http.Request) error {
	resp, err := client.do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return parseApiError(resp.StatusCode, rawData)
	}

	return nil
}

func parseApiError(statusCode int, rawData []byte) error {
	payload := ApiError{StatusCode: statusCode}

	var odataErr odataErrorResponse
	if err := json.Unmarshal(rawData, &odataErr); err == nil {
		payload.Code = odataErr.Error.Code
		payload.Message = odataErr.Error.Message
	}

	return payload
}
