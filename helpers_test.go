package bareblog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	require.Equal(t, "hello-world", Slugify("Hello, World!"))
	require.Equal(t, "hello-world", Slugify("Héllo Wörld"))
	require.Equal(t, "a-b-c", Slugify("  a   b   c  "))
	require.Equal(t, "", Slugify("!!!"))
}

func TestParseDate(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2024-06-01T12:30:45", time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)},
		{"2024-06-01 12:30:45", time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)},
		{"2024-06-01", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"  2024-06-01  ", time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"yesterday", time.Time{}},
	}
	for _, tc := range cases {
		require.True(t, ParseDate(tc.in).Equal(tc.want), "input %q", tc.in)
	}
}

func TestParseDateRFC3339(t *testing.T) {
	got := ParseDate("2024-06-01T12:30:45Z")
	require.True(t, got.Equal(time.Date(2024, 6, 1, 12, 30, 45, 0, time.UTC)))
}

func TestFormatDate(t *testing.T) {
	require.Equal(t, "Jun 1, 2024", FormatDate("2024-06-01T12:30:45"))
	require.Equal(t, "", FormatDate(""))
	require.Equal(t, "", FormatDate("garbage"))
}

func TestNowISORoundTrips(t *testing.T) {
	now := NowISO()
	parsed, err := time.Parse(DateFormat, now)
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().UTC(), parsed, time.Minute)
}

func TestBuildURL(t *testing.T) {
	require.Equal(t, "http://example.com/my-post", BuildURL("http://example.com", "my-post"))
	require.Equal(t, "http://example.com/blog/my-post", BuildURL("http://example.com/blog", "my-post"))
	require.Equal(t, "http://example.com", BuildURL("http://example.com"))
	require.Equal(t, "http://example.com/a/b", BuildURL("http://example.com/", "a", "b"))
}

func TestSplitCSV(t *testing.T) {
	require.Equal(t, []string{"a", "b"}, SplitCSV(" a, ,b,"))
	require.Equal(t, []string{"dup", "dup"}, SplitCSV("dup,dup"))
	require.Empty(t, SplitCSV(""))
	require.Empty(t, SplitCSV(" , , "))
}

func TestTitleFromSlug(t *testing.T) {
	require.Equal(t, "My First Page", TitleFromSlug("my-first-page"))
	require.Equal(t, "About", TitleFromSlug("about"))
	require.Equal(t, "", TitleFromSlug(""))
}

func TestJoinTags(t *testing.T) {
	require.Equal(t, "go, web", JoinTags([]string{"go", "web"}))
	require.Equal(t, "", JoinTags(nil))
}

func TestWebsiteJsonLD(t *testing.T) {
	v := View{SiteTitle: "bareblog", BaseURL: "http://example.com", Description: "A blog"}
	got := WebsiteJsonLD(v)
	require.Contains(t, got, `"@type":"WebSite"`)
	require.Contains(t, got, `"name":"bareblog"`)
	require.Contains(t, got, `"url":"http://example.com"`)
}

func TestBlogPostingJsonLD(t *testing.T) {
	v := View{SiteTitle: "bareblog", BaseURL: "http://example.com"}
	post := Post{Slug: "hi", Title: "Hi", Date: "2024-06-01T00:00:00", Author: "alice", Tags: []string{"go"}}
	got := BlogPostingJsonLD(post, v)
	require.Contains(t, got, `"@type":"BlogPosting"`)
	require.Contains(t, got, `"url":"http://example.com/hi"`)
	require.Contains(t, got, `"name":"alice"`)
	require.Contains(t, got, `"keywords":"go"`)
}
