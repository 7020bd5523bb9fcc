package github_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/vukan322/gitstat/internal/github"
)

func TestFetchProfile(t *testing.T) {
	Convey("Given the user lookup endpoint", t, func() {
		Convey("A known user is decoded from the response", func() {
			var gotUserAgent, gotPath string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotUserAgent = r.Header.Get("User-Agent")
				gotPath = r.URL.Path
				// extra fields mimic the real API and must be ignored
				fmt.Fprint(w, `{
					"login": "octocat",
					"name": "The Octocat",
					"public_repos": 8,
					"followers": 4000,
					"following": 9,
					"avatar_url": "https://example.invalid/a.png",
					"company": "@github"
				}`)
			}))
			defer srv.Close()

			client := github.New("", github.WithBaseURL(srv.URL))
			profile, err := client.FetchProfile(context.Background(), "octocat")

			So(err, ShouldBeNil)
			So(gotPath, ShouldEqual, "/users/octocat")
			So(profile.Login, ShouldEqual, "octocat")
			So(profile.Name, ShouldEqual, "The Octocat")
			So(profile.PublicRepos, ShouldEqual, 8)
			So(profile.Followers, ShouldEqual, 4000)
			So(profile.Following, ShouldEqual, 9)
			So(gotUserAgent, ShouldEqual, "gitstat-cli")
		})

		Convey("A 404 is reported as the user not existing", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"Not Found"}`, http.StatusNotFound)
			}))
			defer srv.Close()

			client := github.New("", github.WithBaseURL(srv.URL))
			_, err := client.FetchProfile(context.Background(), "doesnotexist123")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "User 'doesnotexist123' not found")
		})
	})
}

func contributionsEnvelope() string {
	return `{
		"data": {
			"user": {
				"login": "octocat",
				"name": "The Octocat",
				"contributionsCollection": {
					"contributionCalendar": {
						"totalContributions": 15,
						"weeks": [
							{"contributionDays": [
								{"date": "2026-08-10", "contributionCount": 0, "color": "#ebedf0"},
								{"date": "2026-08-11", "contributionCount": 3, "color": "#40c463"}
							]},
							{"contributionDays": [
								{"date": "2026-08-17", "contributionCount": 11, "color": "#216e39"},
								{"date": "2026-08-18", "contributionCount": 1, "color": "#9be9a8"}
							]}
						]
					}
				}
			}
		}
	}`
}

func TestFetchContributions(t *testing.T) {
	Convey("Given the GraphQL endpoint", t, func() {
		Convey("A successful envelope unwraps to the calendar", func() {
			var gotAuth, gotUserAgent, gotMethod string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotAuth = r.Header.Get("Authorization")
				gotUserAgent = r.Header.Get("User-Agent")
				gotMethod = r.Method
				fmt.Fprint(w, contributionsEnvelope())
			}))
			defer srv.Close()

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			cal, err := client.FetchContributions(context.Background(), "octocat")

			So(err, ShouldBeNil)
			So(gotMethod, ShouldEqual, http.MethodPost)
			So(gotAuth, ShouldEqual, "Bearer tok123")
			So(gotUserAgent, ShouldEqual, "gitstat-cli")
			So(cal.TotalContributions, ShouldEqual, 15)
			So(len(cal.Weeks), ShouldEqual, 2)
			So(cal.Weeks[0].Days[1].Count, ShouldEqual, 3)
			So(cal.Weeks[1].Days[0].Date, ShouldEqual, "2026-08-17")
			So(cal.ActiveDays(), ShouldEqual, 3)
		})

		Convey("An errors list is joined and surfaced", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"errors":[{"message":"Bad credentials"},{"message":"try again"}]}`)
			}))
			defer srv.Close()

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			_, err := client.FetchContributions(context.Background(), "octocat")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "Bad credentials")
			So(err.Error(), ShouldContainSubstring, "try again")
		})

		Convey("A missing data payload is an error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{}`)
			}))
			defer srv.Close()

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			_, err := client.FetchContributions(context.Background(), "octocat")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "no data returned by API")
		})

		Convey("A null user is reported with the username", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				fmt.Fprint(w, `{"data":{"user":null}}`)
			}))
			defer srv.Close()

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			_, err := client.FetchContributions(context.Background(), "ghostuser")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "ghostuser")
		})

		Convey("A non-success status is surfaced as an HTTP error", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			}))
			defer srv.Close()

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			_, err := client.FetchContributions(context.Background(), "octocat")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "HTTP error")
			So(err.Error(), ShouldContainSubstring, "502")
		})

		Convey("A transport failure is surfaced, not retried", func() {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
			srv.Close() // nothing is listening anymore

			client := github.New("tok123", github.WithGraphQLURL(srv.URL))
			_, err := client.FetchContributions(context.Background(), "octocat")

			So(err, ShouldNotBeNil)
			So(err.Error(), ShouldContainSubstring, "do request")
		})
	})
}
