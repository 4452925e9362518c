package ghapp

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"regexp"
	"strconv"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/utils/logging"
	"github.com/gitfolio/gitfolio/pkg/utils/safe"
)

const (
	defaultBaseURL   = "https://api.github.com"
	acceptHeader     = "application/vnd.github+json"
	apiVersionHeader = "X-GitHub-Api-Version"
	apiVersion       = "2022-11-28"

	listPageSize = 100

	// The original design has no client-side timeout; a bounded one is
	// applied here as a hardening measure.
	fetchTimeout = 30 * time.Second
)

// ptnLastPage extracts the last page number from a Link header, e.g.
// <https://api.github.com/...?per_page=1&page=7>; rel="last"
var ptnLastPage = regexp.MustCompile(`page=(\d+)>; rel="last"`)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the GitHub API as a GitHub App. Every call obtains a
// fresh installation token; there is no token cache. A caching token
// source can be layered in with WithHTTPClient without changing call
// sites.
type Client struct {
	signer     *Signer
	httpClient HTTPClient
	baseURL    string
}

var _ interfaces.GitHubApp = (*Client)(nil)

type Option func(*Client)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(x *Client) {
		x.httpClient = httpClient
	}
}

func WithBaseURL(baseURL string) Option {
	return func(x *Client) {
		x.baseURL = baseURL
	}
}

func New(appID types.GitHubAppID, pem types.GitHubAppPrivateKey, options ...Option) (*Client, error) {
	signer, err := NewSigner(appID, pem)
	if err != nil {
		return nil, err
	}

	client := &Client{
		signer:     signer,
		httpClient: &http.Client{Timeout: fetchTimeout},
		baseURL:    defaultBaseURL,
	}

	for _, opt := range options {
		opt(client)
	}

	return client, nil
}

// CreateInstallationToken exchanges a signed app assertion for an
// installation-scoped access token. Any non-success response is a hard
// failure; there is no retry at this layer.
func (x *Client) CreateInstallationToken(ctx context.Context, installID types.GitHubAppInstallID) (*model.InstallationToken, error) {
	assertion, err := x.signer.SignedAssertion(logging.CtxTime(ctx))
	if err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/app/installations/%s/access_tokens",
		x.baseURL, url.PathEscape(string(installID)))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build token request", goerr.V("installID", installID))
	}
	req.Header.Set("Authorization", "Bearer "+assertion)
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set(apiVersionHeader, apiVersion)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to request installation token", goerr.V("installID", installID))
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.Wrap(types.ErrAuthFailed, "token endpoint returned non-success status",
			goerr.V("status", resp.StatusCode),
			goerr.V("body", string(body)),
			goerr.V("installID", installID),
		)
	}

	var token model.InstallationToken
	if err := json.NewDecoder(resp.Body).Decode(&token); err != nil {
		return nil, goerr.Wrap(err, "failed to decode installation token response")
	}

	return &token, nil
}

// Fetch performs one authenticated API call and returns the raw
// response. Status handling is the caller's responsibility; the caller
// must close the body.
func (x *Client) Fetch(ctx context.Context, input *interfaces.FetchInput) (*http.Response, error) {
	token, err := x.CreateInstallationToken(ctx, input.InstallID)
	if err != nil {
		return nil, err
	}

	method := input.Method
	if method == "" {
		method = http.MethodGet
	}

	req, err := http.NewRequestWithContext(ctx, method, input.URL, input.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build request", goerr.V("url", input.URL))
	}
	for key, values := range input.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Authorization", "Bearer "+string(token.Token))
	req.Header.Set("Accept", acceptHeader)
	req.Header.Set(apiVersionHeader, apiVersion)

	resp, err := x.httpClient.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to call GitHub API", goerr.V("url", input.URL))
	}

	return resp, nil
}

type listReposResponse struct {
	TotalCount   int                       `json:"total_count"`
	Repositories []*model.RemoteRepository `json:"repositories"`
}

// ListInstallationRepos pages through the installation repositories
// endpoint until a page comes back empty or short. A failed page fetch
// discards everything; there is no partial listing.
func (x *Client) ListInstallationRepos(ctx context.Context, installID types.GitHubAppInstallID) ([]*model.RemoteRepository, error) {
	var allRepos []*model.RemoteRepository

	for page := 1; ; page++ {
		parsed, err := x.fetchRepoPage(ctx, installID, page)
		if err != nil {
			return nil, err
		}

		if len(parsed.Repositories) == 0 {
			break
		}

		for _, repo := range parsed.Repositories {
			if err := repo.Validate(); err != nil {
				return nil, goerr.Wrap(err, "invalid repository record in listing",
					goerr.V("page", page),
				)
			}
		}
		allRepos = append(allRepos, parsed.Repositories...)

		if len(parsed.Repositories) < listPageSize {
			break
		}
	}

	logging.From(ctx).Info("Listed installation repos",
		slog.Int("count", len(allRepos)),
		slog.Any("installID", installID),
	)

	return allRepos, nil
}

func (x *Client) fetchRepoPage(ctx context.Context, installID types.GitHubAppInstallID, page int) (*listReposResponse, error) {
	endpoint := fmt.Sprintf("%s/installation/repositories?per_page=%d&page=%d",
		x.baseURL, listPageSize, page)

	resp, err := x.Fetch(ctx, &interfaces.FetchInput{
		InstallID: installID,
		URL:       endpoint,
	})
	if err != nil {
		return nil, err
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.Wrap(types.ErrSyncFailed, "failed to fetch installation repositories",
			goerr.V("status", resp.StatusCode),
			goerr.V("page", page),
			goerr.V("body", string(body)),
		)
	}

	var parsed listReposResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, goerr.Wrap(err, "failed to decode repository listing", goerr.V("page", page))
	}

	return &parsed, nil
}

// FetchLanguages returns the language-to-byte-count breakdown of one
// repository.
func (x *Client) FetchLanguages(ctx context.Context, installID types.GitHubAppInstallID, languagesURL string) (map[string]int64, error) {
	resp, err := x.Fetch(ctx, &interfaces.FetchInput{
		InstallID: installID,
		URL:       languagesURL,
	})
	if err != nil {
		return nil, err
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, goerr.Wrap(types.ErrInvalidGitHubData, "languages endpoint returned non-success status",
			goerr.V("status", resp.StatusCode),
			goerr.V("url", languagesURL),
			goerr.V("body", string(body)),
		)
	}

	var languages map[string]int64
	if err := json.NewDecoder(resp.Body).Decode(&languages); err != nil {
		return nil, goerr.Wrap(err, "failed to decode languages response", goerr.V("url", languagesURL))
	}

	return languages, nil
}

// CountCommits derives the total commit count of a repository from a
// single one-item page: with per_page=1, the page number of the Link
// header's rel="last" entry equals the commit count. Without a "last"
// relation the body of the only page is counted instead.
func (x *Client) CountCommits(ctx context.Context, installID types.GitHubAppInstallID, fullName string) (int, error) {
	endpoint := fmt.Sprintf("%s/repos/%s/commits?per_page=1", x.baseURL, fullName)

	resp, err := x.Fetch(ctx, &interfaces.FetchInput{
		InstallID: installID,
		URL:       endpoint,
	})
	if err != nil {
		return 0, err
	}
	defer safe.Close(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return 0, goerr.Wrap(types.ErrInvalidGitHubData, "commits endpoint returned non-success status",
			goerr.V("status", resp.StatusCode),
			goerr.V("repo", fullName),
			goerr.V("body", string(body)),
		)
	}

	if link := resp.Header.Get("Link"); link != "" {
		if m := ptnLastPage.FindStringSubmatch(link); m != nil {
			count, err := strconv.Atoi(m[1])
			if err != nil {
				return 0, goerr.Wrap(err, "invalid page number in Link header", goerr.V("link", link))
			}
			return count, nil
		}
	}

	var commits []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&commits); err != nil {
		return 0, goerr.Wrap(err, "failed to decode commits response", goerr.V("repo", fullName))
	}

	return len(commits), nil
}
