package service

import (
	"context"
	"encoding/xml"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/itsyourradio/radio-api/internal/core/domain"
	"github.com/itsyourradio/radio-api/internal/core/ports"
)

// FeedCache stores rendered feeds keyed by show ID. A miss returns
// ("", nil); cache errors are soft failures and only logged.
type FeedCache interface {
	Get(ctx context.Context, showID string) (string, error)
	Set(ctx context.Context, showID, feed string) error
}

// FeedService renders RSS 2.0 feeds for podcast shows, caching the rendered
// document so repeated feed polls do not hit the database.
type FeedService struct {
	shows    ports.ShowRepository
	episodes ports.EpisodeRepository
	cache    FeedCache
	baseURL  string
	logger   zerolog.Logger
}

func NewFeedService(shows ports.ShowRepository, episodes ports.EpisodeRepository, cache FeedCache, baseURL string, logger zerolog.Logger) *FeedService {
	return &FeedService{shows: shows, episodes: episodes, cache: cache, baseURL: baseURL, logger: logger}
}

type rssEnclosure struct {
	URL  string `xml:"url,attr"`
	Type string `xml:"type,attr"`
}

type rssItem struct {
	Title       string        `xml:"title"`
	Description string        `xml:"description"`
	GUID        string        `xml:"guid"`
	PubDate     string        `xml:"pubDate"`
	Enclosure   *rssEnclosure `xml:"enclosure,omitempty"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Category    string    `xml:"category,omitempty"`
	Items       []rssItem `xml:"item"`
}

type rssFeed struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

// ShowFeed returns the RSS document for a show, serving from cache when
// possible.
func (s *FeedService) ShowFeed(ctx context.Context, showID string) (string, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, showID)
		if err != nil {
			s.logger.Warn().Err(err).Str("show_id", showID).Msg("feed cache read failed")
		} else if cached != "" {
			return cached, nil
		}
	}

	show, err := s.shows.FindByID(ctx, showID)
	if err != nil {
		return "", err
	}
	episodes, err := s.episodes.ListByShow(ctx, showID)
	if err != nil {
		return "", err
	}

	feed, err := s.render(show, episodes)
	if err != nil {
		return "", err
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, showID, feed); err != nil {
			s.logger.Warn().Err(err).Str("show_id", showID).Msg("feed cache write failed")
		}
	}
	return feed, nil
}

func (s *FeedService) render(show *domain.PodcastShow, episodes []domain.PodcastEpisode) (string, error) {
	items := make([]rssItem, 0, len(episodes))
	for _, ep := range episodes {
		item := rssItem{
			Title:       ep.Title,
			Description: ep.Description,
			GUID:        ep.ID,
			PubDate:     ep.PublishedAt.UTC().Format(time.RFC1123Z),
		}
		if ep.FilePath != "" {
			item.Enclosure = &rssEnclosure{
				URL:  s.baseURL + "/media/" + ep.FilePath,
				Type: "audio/mpeg",
			}
		}
		items = append(items, item)
	}

	doc := rssFeed{
		Version: "2.0",
		Channel: rssChannel{
			Title:       show.Title,
			Link:        s.baseURL + "/shows/" + show.ID,
			Description: show.Description,
			Category:    show.Category,
			Items:       items,
		},
	}

	out, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("render feed: %w", err)
	}
	return xml.Header + string(out), nil
}
