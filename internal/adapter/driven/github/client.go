// Package github implements the SocialFeed port using the go-github library.
package github

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	gh "github.com/google/go-github/v82/github"
	"github.com/gregjones/httpcache"

	"github.com/gofri/go-github-ratelimit/v2/github_ratelimit"

	"github.com/kavyapatel/portfolio/internal/domain/model"
	"github.com/kavyapatel/portfolio/internal/domain/port/driven"
)

// Compile-time interface satisfaction check.
var _ driven.SocialFeed = (*Client)(nil)

// maxFeedPosts caps the number of posts returned by RecentPosts.
const maxFeedPosts = 10

// Client implements the driven.SocialFeed port by mapping the authenticated
// user's recent public GitHub events into feed posts.
type Client struct {
	gh       *gh.Client
	username string
}

// NewClient creates a GitHub API client with the following transport stack:
//  1. httpcache (ETag-based conditional request caching)
//  2. go-github-ratelimit (secondary rate limit middleware, sleeps on 429)
//  3. go-github (GitHub REST API client with PAT auth)
//
// An empty token yields an unauthenticated client, which is sufficient for
// public event feeds at a lower rate limit.
func NewClient(token, username string) *Client {
	cacheTransport := httpcache.NewMemoryCacheTransport()
	rateLimitClient := github_ratelimit.NewClient(cacheTransport)
	client := gh.NewClient(rateLimitClient)
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &Client{
		gh:       client,
		username: username,
	}
}

// NewClientWithHTTPClient creates a Client with a custom http.Client and base URL.
// This constructor is intended for testing, allowing injection of an httptest server.
func NewClientWithHTTPClient(httpClient *http.Client, baseURL, username string) (*Client, error) {
	client := gh.NewClient(httpClient)

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base URL: %w", err)
	}
	client.BaseURL = u

	return &Client{
		gh:       client,
		username: username,
	}, nil
}

// RecentPosts retrieves the user's recent public events and maps them into
// feed posts, newest first as returned by the API. Events with no feed
// representation (unknown types) are skipped.
func (c *Client) RecentPosts(ctx context.Context) ([]model.SocialPost, error) {
	opts := &gh.ListOptions{PerPage: 30}

	events, _, err := c.gh.Activity.ListEventsPerformedByUser(ctx, c.username, true, opts)
	if err != nil {
		return nil, fmt.Errorf("listing events for %s: %w", c.username, err)
	}

	posts := make([]model.SocialPost, 0, maxFeedPosts)
	for _, ev := range events {
		post, ok := mapEvent(ev)
		if !ok {
			continue
		}
		posts = append(posts, post)
		if len(posts) == maxFeedPosts {
			break
		}
	}

	return posts, nil
}

// mapEvent converts a GitHub event into a feed post. The second return value
// is false for event types the feed does not surface.
func mapEvent(ev *gh.Event) (model.SocialPost, bool) {
	repo := ev.GetRepo().GetName()
	post := model.SocialPost{
		ID:        ev.GetID(),
		Platform:  "github",
		Timestamp: ev.GetCreatedAt().Time,
	}

	switch ev.GetType() {
	case "PushEvent":
		payload, err := ev.ParsePayload()
		if err != nil {
			return model.SocialPost{}, false
		}
		push, ok := payload.(*gh.PushEvent)
		if !ok {
			return model.SocialPost{}, false
		}
		commits := len(push.Commits)
		noun := "commits"
		if commits == 1 {
			noun = "commit"
		}
		post.Content = fmt.Sprintf("Pushed %d %s to %s", commits, noun, repo)
	case "CreateEvent":
		post.Content = fmt.Sprintf("Created %s", repo)
	case "WatchEvent":
		post.Content = fmt.Sprintf("Starred %s", repo)
		post.Stars = 1
	case "ForkEvent":
		post.Content = fmt.Sprintf("Forked %s", repo)
		post.Reposts = 1
	case "PullRequestEvent":
		post.Content = fmt.Sprintf("Opened a pull request in %s", repo)
	case "IssuesEvent":
		post.Content = fmt.Sprintf("Opened an issue in %s", repo)
	case "ReleaseEvent":
		post.Content = fmt.Sprintf("Published a release in %s", repo)
	default:
		return model.SocialPost{}, false
	}

	return post, true
}
