package feed

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cjbdev/iss-sightings/internal/observability"
)

const sightingRSS = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0">
<channel>
<title>ISS Sightings over Gaithersburg</title>
<item>
<title>ISS Sighting</title>
<link>https://spotthestation.nasa.gov/sightings/</link>
<description><![CDATA[Date: Monday Jan 5, 2026 <br/> Time: 6:32 PM <br/> Duration: less than 1 minute <br/> Maximum Elevation: 10° <br/> Approach: 10° above NNW <br/> Departure: 13° above N <br/>]]></description>
</item>
<item>
<title>ISS Sighting</title>
<link>https://spotthestation.nasa.gov/sightings/</link>
<description><![CDATA[Date: Tuesday Jan 6, 2026 <br/> Time: 5:44 PM <br/> Duration: 4 minutes <br/> Maximum Elevation: 66° <br/> Approach: 10° above SW <br/> Departure: 12° above ESE <br/>]]></description>
</item>
</channel>
</rss>`

const crewRSS = `<?xml version="1.0" encoding="utf-8"?>
<rss version="2.0">
<channel>
<title>ISS Crew</title>
<item>
<title>Current Crew</title>
<link>https://www.nasa.gov/mission_pages/station/expeditions/</link>
<description>Commander Jane Doe and Flight Engineers John Roe and Aki Sato.</description>
</item>
</channel>
</rss>`

func testClient(baseURL, crewURL string, timeout time.Duration) *Client {
	return NewClient(baseURL, crewURL, timeout,
		observability.NewMetricsForTesting(),
		slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_Sightings(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/United_States_Maryland_Gaithersburg.xml", r.URL.Path)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sightingRSS))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL+"/crew.xml", 5*time.Second)
	entries, err := c.Sightings(context.Background(), "United_States_Maryland_Gaithersburg")
	require.NoError(t, err)

	require.Len(t, entries, 2)
	assert.Contains(t, entries[0].Description, "Date: Monday Jan 5, 2026")
	assert.Contains(t, entries[0].Description, "Approach: 10° above NNW")
	assert.Equal(t, "https://spotthestation.nasa.gov/sightings/", entries[0].Link)
}

func TestClient_Crew(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crew.xml", r.URL.Path)
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(crewRSS))
	}))
	defer srv.Close()

	c := testClient(srv.URL+"/sightings", srv.URL+"/crew.xml", 5*time.Second)
	entries, err := c.Crew(context.Background())
	require.NoError(t, err)

	require.Len(t, entries, 1)
	assert.Contains(t, entries[0].Description, "Commander Jane Doe")
	assert.Equal(t, "https://www.nasa.gov/mission_pages/station/expeditions/", entries[0].Link)
}

func TestClient_Sightings_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL, 5*time.Second)
	_, err := c.Sightings(context.Background(), "Nowhere")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestClient_Sightings_MalformedFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("this is not xml"))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL, 5*time.Second)
	_, err := c.Sightings(context.Background(), "Anywhere")
	require.Error(t, err)
}

func TestClient_Sightings_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(sightingRSS))
	}))
	defer srv.Close()

	c := testClient(srv.URL, srv.URL, 50*time.Millisecond)
	_, err := c.Sightings(context.Background(), "Anywhere")
	require.Error(t, err)
}
