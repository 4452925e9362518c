package ghapp_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/m-mizutani/gt"

	"github.com/gitfolio/gitfolio/pkg/domain/model"
	"github.com/gitfolio/gitfolio/pkg/domain/types"
	"github.com/gitfolio/gitfolio/pkg/infra/ghapp"
)

type apiStub struct {
	tokenCalls  atomic.Int64
	tokenStatus int
	token       string

	handleAPI http.HandlerFunc
}

func (x *apiStub) handler(t *testing.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/app/installations/") {
			x.tokenCalls.Add(1)

			gt.V(t, r.Method).Equal(http.MethodPost)
			gt.True(t, strings.HasSuffix(r.URL.Path, "/access_tokens"))
			gt.True(t, strings.HasPrefix(r.Header.Get("Authorization"), "Bearer "))
			gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github+json")
			gt.V(t, r.Header.Get("X-GitHub-Api-Version")).Equal("2022-11-28")

			status := x.tokenStatus
			if status == 0 {
				status = http.StatusCreated
			}
			w.WriteHeader(status)
			resp := model.InstallationToken{
				Token:     types.InstallationToken(x.token),
				ExpiresAt: time.Now().Add(time.Hour),
			}
			gt.NoError(t, json.NewEncoder(w).Encode(resp))
			return
		}

		gt.V(t, r.Header.Get("Authorization")).Equal("Bearer " + x.token)
		gt.V(t, r.Header.Get("Accept")).Equal("application/vnd.github+json")
		x.handleAPI(w, r)
	}
}

func newTestClient(t *testing.T, stub *apiStub) (*ghapp.Client, string) {
	t.Helper()

	srv := httptest.NewServer(stub.handler(t))
	t.Cleanup(srv.Close)

	pemKey, _ := genTestKey(t)
	client := gt.R1(ghapp.New(12345, pemKey, ghapp.WithBaseURL(srv.URL))).NoError(t)
	return client, srv.URL
}

func TestCreateInstallationToken(t *testing.T) {
	stub := &apiStub{token: "ghs_dummy"}
	client, _ := newTestClient(t, stub)

	token, err := client.CreateInstallationToken(context.Background(), "inst-1")
	gt.NoError(t, err)
	gt.V(t, token.Token).Equal(types.InstallationToken("ghs_dummy"))
	gt.V(t, stub.tokenCalls.Load()).Equal(int64(1))
}

func TestCreateInstallationTokenAuthFailure(t *testing.T) {
	stub := &apiStub{token: "ghs_dummy", tokenStatus: http.StatusUnauthorized}
	client, _ := newTestClient(t, stub)

	_, err := client.CreateInstallationToken(context.Background(), "inst-1")
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrAuthFailed))
}

func TestFetchUsesFreshTokenPerCall(t *testing.T) {
	stub := &apiStub{token: "ghs_dummy"}
	stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Go": 100}`)
	}
	client, baseURL := newTestClient(t, stub)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		_, err := client.FetchLanguages(ctx, "inst-1", baseURL+"/repos/octocat/hello/languages")
		gt.NoError(t, err)
	}

	// One token exchange per API call, no caching
	gt.V(t, stub.tokenCalls.Load()).Equal(int64(3))
}

func TestListInstallationRepos(t *testing.T) {
	newRepo := func(i int) *model.RemoteRepository {
		return &model.RemoteRepository{
			Name:     fmt.Sprintf("repo-%03d", i),
			FullName: fmt.Sprintf("octocat/repo-%03d", i),
		}
	}

	t.Run("two pages", func(t *testing.T) {
		var pageCalls []string
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/installation/repositories")
			gt.V(t, r.URL.Query().Get("per_page")).Equal("100")
			page := r.URL.Query().Get("page")
			pageCalls = append(pageCalls, page)

			var repos []*model.RemoteRepository
			switch page {
			case "1":
				for i := 0; i < 100; i++ {
					repos = append(repos, newRepo(i))
				}
			case "2":
				for i := 100; i < 150; i++ {
					repos = append(repos, newRepo(i))
				}
			}
			gt.NoError(t, json.NewEncoder(w).Encode(map[string]any{
				"total_count":  150,
				"repositories": repos,
			}))
		}
		client, _ := newTestClient(t, stub)

		repos, err := client.ListInstallationRepos(context.Background(), "inst-1")
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(150)
		gt.V(t, repos[0].Name).Equal("repo-000")
		gt.V(t, repos[149].Name).Equal("repo-149")

		// The short second page stops the loop without a third request
		gt.V(t, pageCalls).Equal([]string{"1", "2"})
	})

	t.Run("no repositories", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total_count": 0, "repositories": []}`)
		}
		client, _ := newTestClient(t, stub)

		repos, err := client.ListInstallationRepos(context.Background(), "inst-1")
		gt.NoError(t, err)
		gt.V(t, len(repos)).Equal(0)
	})

	t.Run("server error discards listing", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}
		client, _ := newTestClient(t, stub)

		_, err := client.ListInstallationRepos(context.Background(), "inst-1")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrSyncFailed))
	})

	t.Run("invalid record fails listing", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"total_count": 1, "repositories": [{"name": ""}]}`)
		}
		client, _ := newTestClient(t, stub)

		_, err := client.ListInstallationRepos(context.Background(), "inst-1")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrValidationFailed))
	})
}

func TestFetchLanguages(t *testing.T) {
	stub := &apiStub{token: "ghs_dummy"}
	stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
		gt.V(t, r.URL.Path).Equal("/repos/octocat/hello/languages")
		fmt.Fprint(w, `{"Go": 12345, "Makefile": 67}`)
	}
	client, baseURL := newTestClient(t, stub)

	languages, err := client.FetchLanguages(context.Background(), "inst-1", baseURL+"/repos/octocat/hello/languages")
	gt.NoError(t, err)
	gt.V(t, languages).Equal(map[string]int64{"Go": 12345, "Makefile": 67})
}

func TestCountCommits(t *testing.T) {
	t.Run("from link header", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			gt.V(t, r.URL.Path).Equal("/repos/octocat/hello/commits")
			gt.V(t, r.URL.Query().Get("per_page")).Equal("1")

			w.Header().Set("Link",
				`<https://api.github.com/repos/octocat/hello/commits?per_page=1&page=2>; rel="next", `+
					`<https://api.github.com/repos/octocat/hello/commits?per_page=1&page=731>; rel="last"`)
			fmt.Fprint(w, `[{"sha": "abc123"}]`)
		}
		client, _ := newTestClient(t, stub)

		count, err := client.CountCommits(context.Background(), "inst-1", "octocat/hello")
		gt.NoError(t, err)
		gt.V(t, count).Equal(731)
	})

	t.Run("single page without link header", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[{"sha": "abc123"}]`)
		}
		client, _ := newTestClient(t, stub)

		count, err := client.CountCommits(context.Background(), "inst-1", "octocat/hello")
		gt.NoError(t, err)
		gt.V(t, count).Equal(1)
	})

	t.Run("empty repository", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `[]`)
		}
		client, _ := newTestClient(t, stub)

		count, err := client.CountCommits(context.Background(), "inst-1", "octocat/hello")
		gt.NoError(t, err)
		gt.V(t, count).Equal(0)
	})

	t.Run("non-success status", func(t *testing.T) {
		stub := &apiStub{token: "ghs_dummy"}
		stub.handleAPI = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
		}
		client, _ := newTestClient(t, stub)

		_, err := client.CountCommits(context.Background(), "inst-1", "octocat/hello")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, types.ErrInvalidGitHubData))
	})
}
