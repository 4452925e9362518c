package infra

import (
	"github.com/gitfolio/gitfolio/pkg/domain/interfaces"
	"github.com/gitfolio/gitfolio/pkg/infra/steps"
)

type Clients struct {
	githubApp interfaces.GitHubApp
	database  interfaces.Database
	bqClient  interfaces.BigQuery
	steps     interfaces.StepRunner
}

type Option func(*Clients)

func New(options ...Option) *Clients {
	client := &Clients{
		steps: steps.New(),
	}

	for _, opt := range options {
		opt(client)
	}

	return client
}

func (x *Clients) GitHubApp() interfaces.GitHubApp {
	return x.githubApp
}
func (x *Clients) Database() interfaces.Database {
	return x.database
}
func (x *Clients) BigQuery() interfaces.BigQuery {
	return x.bqClient
}
func (x *Clients) Steps() interfaces.StepRunner {
	return x.steps
}

func WithGitHubApp(client interfaces.GitHubApp) Option {
	return func(x *Clients) {
		x.githubApp = client
	}
}

func WithDatabase(db interfaces.Database) Option {
	return func(x *Clients) {
		x.database = db
	}
}

func WithBigQuery(client interfaces.BigQuery) Option {
	return func(x *Clients) {
		x.bqClient = client
	}
}

func WithSteps(runner interfaces.StepRunner) Option {
	return func(x *Clients) {
		x.steps = runner
	}
}
