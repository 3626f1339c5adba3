package cmd

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/ebochsler/personal-site/internal/fetch"
	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/regional"
	"github.com/ebochsler/personal-site/internal/site"
	"github.com/ebochsler/personal-site/internal/store"
)

// loadDatasets gathers everything a build needs. The four sources are
// fetched concurrently and independently: a failed primary falls back to
// the cache and only surfaces on the page when the cache is empty too,
// while featured and topology failures degrade silently.
func loadDatasets(ctx context.Context, s *store.Store, offline bool) site.Data {
	if offline {
		return cachedDatasets(s)
	}

	client := fetch.New(cfg.Sources)
	var data site.Data
	var wg sync.WaitGroup
	wg.Add(4)

	go func() {
		defer wg.Done()
		d, err := client.Running(ctx)
		if err == nil {
			cachePut(s, store.KindRunning, d)
			data.Running = d
			return
		}
		logVerbose("running fetch failed: %v", err)
		if cached := cachedRunning(s); cached != nil {
			data.Running = cached
			return
		}
		data.RunningErr = err
	}()

	go func() {
		defer wg.Done()
		d, err := client.Venues(ctx)
		if err == nil {
			cachePut(s, store.KindVenues, d)
			data.Venues = d
			return
		}
		logVerbose("venue fetch failed: %v", err)
		if cached := cachedVenues(s); cached != nil {
			data.Venues = cached
			return
		}
		data.VenuesErr = err
	}()

	go func() {
		defer wg.Done()
		routes, err := client.Featured(ctx)
		if err == nil {
			cachePut(s, store.KindFeatured, routes)
			data.Featured = routes
			return
		}
		logVerbose("featured fetch failed: %v", err)
		data.Featured = cachedFeatured(s)
	}()

	go func() {
		defer wg.Done()
		raw, err := client.Topology(ctx)
		if err != nil {
			logVerbose("topology fetch failed: %v", err)
			data.Topology = cachedTopology(s)
			return
		}
		if s != nil {
			if err := s.Put(store.KindTopology, raw); err != nil {
				logVerbose("caching topology: %v", err)
			}
		}
		topo, err := regional.ParseTopology(raw)
		if err != nil {
			logVerbose("parsing topology: %v", err)
			return
		}
		data.Topology = topo
	}()

	wg.Wait()
	return data
}

func cachedDatasets(s *store.Store) site.Data {
	return site.Data{
		Running:  cachedRunning(s),
		Venues:   cachedVenues(s),
		Featured: cachedFeatured(s),
		Topology: cachedTopology(s),
	}
}

func cachePut(s *store.Store, kind string, v any) {
	if s == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		logVerbose("encoding %s for cache: %v", kind, err)
		return
	}
	if err := s.Put(kind, payload); err != nil {
		logVerbose("caching %s: %v", kind, err)
	}
}

func cacheGet(s *store.Store, kind string) []byte {
	if s == nil {
		return nil
	}
	payload, _, err := s.Get(kind)
	if err != nil {
		logVerbose("no cached %s: %v", kind, err)
		return nil
	}
	return payload
}

func cachedRunning(s *store.Store) *model.RunningData {
	payload := cacheGet(s, store.KindRunning)
	if payload == nil {
		return nil
	}
	var d model.RunningData
	if err := json.Unmarshal(payload, &d); err != nil {
		logVerbose("decoding cached running data: %v", err)
		return nil
	}
	model.AssignRunningIDs(&d)
	return &d
}

func cachedVenues(s *store.Store) *model.VenueData {
	payload := cacheGet(s, store.KindVenues)
	if payload == nil {
		return nil
	}
	var d model.VenueData
	if err := json.Unmarshal(payload, &d); err != nil {
		logVerbose("decoding cached venue data: %v", err)
		return nil
	}
	model.AssignVenueIDs(&d)
	return &d
}

func cachedFeatured(s *store.Store) []model.FeaturedRoute {
	payload := cacheGet(s, store.KindFeatured)
	if payload == nil {
		return nil
	}
	var routes []model.FeaturedRoute
	if err := json.Unmarshal(payload, &routes); err != nil {
		logVerbose("decoding cached featured routes: %v", err)
		return nil
	}
	model.AssignFeaturedIDs(routes)
	return routes
}

func cachedTopology(s *store.Store) *regional.Topology {
	payload := cacheGet(s, store.KindTopology)
	if payload == nil {
		return nil
	}
	topo, err := regional.ParseTopology(payload)
	if err != nil {
		logVerbose("parsing cached topology: %v", err)
		return nil
	}
	return topo
}
