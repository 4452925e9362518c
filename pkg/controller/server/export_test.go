package server

import "github.com/gitfolio/gitfolio/pkg/domain/model"

var GithubEventToInput = githubEventToInput

func (x *githubEvent) Push() *model.RepoPushInput              { return x.push }
func (x *githubEvent) Change() *model.RepoChangeInput          { return x.change }
func (x *githubEvent) Install() *model.InstallationChangeInput { return x.install }
