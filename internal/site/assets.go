package site

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ebochsler/personal-site/internal/model"
	"github.com/ebochsler/personal-site/internal/palette"
	"github.com/ebochsler/personal-site/internal/theme"
)

func (b *Builder) writeAssets() error {
	assets := map[string]string{
		"site.css":    siteCSS,
		"playback.js": playbackJS,
		"palette.css": paletteCSS(),
	}
	for name, body := range assets {
		path := filepath.Join(b.OutDir, "assets", name)
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing asset %s: %w", name, err)
		}
	}
	return nil
}

// paletteCSS emits one custom property per venue category and theme, so
// category-colored bars restyle on toggle without a rebuild.
func paletteCSS() string {
	var sb strings.Builder
	for _, mode := range theme.Modes {
		fmt.Fprintf(&sb, "[data-theme=\"%s\"] {\n", mode)
		for _, cat := range model.Categories {
			fmt.Fprintf(&sb, "  --cat-%s: %s;\n", cat, palette.Resolve(cat, mode))
		}
		sb.WriteString("}\n")
	}
	for _, cat := range model.Categories {
		fmt.Fprintf(&sb, ".cat-%s { background: var(--cat-%s); }\n", cat, cat)
	}
	return sb.String()
}

const siteCSS = `:root {
  --bg: #1a1a1a;
  --fg: #e8e6e3;
  --muted: #9a968f;
  --card: #242424;
  --track: #333;
  --accent: #ff6b35;
  --heat: 255, 107, 53;
}
[data-theme="light"] {
  --bg: #faf8f5;
  --fg: #2b2825;
  --muted: #6f6a63;
  --card: #fff;
  --track: #e4e0da;
  --accent: #d84a0f;
  --heat: 216, 74, 15;
}
* { box-sizing: border-box; }
body {
  margin: 0;
  background: var(--bg);
  color: var(--fg);
  font: 16px/1.5 -apple-system, "Segoe UI", sans-serif;
}
main { max-width: 860px; margin: 0 auto; padding: 1rem; }
.topnav {
  display: flex;
  gap: 1rem;
  align-items: center;
  padding: .75rem 1rem;
  border-bottom: 1px solid var(--track);
}
.topnav a { color: var(--fg); text-decoration: none; }
#theme-toggle {
  margin-left: auto;
  background: none;
  border: 1px solid var(--track);
  color: var(--fg);
  border-radius: 6px;
  padding: .25rem .6rem;
  cursor: pointer;
}
.status-error {
  background: rgba(216, 74, 15, .15);
  border: 1px solid var(--accent);
  border-radius: 8px;
  padding: .75rem 1rem;
}
.stat-grid {
  display: grid;
  grid-template-columns: repeat(auto-fit, minmax(140px, 1fr));
  gap: .75rem;
  margin: 1.5rem 0;
}
.stat-card {
  background: var(--card);
  border-radius: 10px;
  padding: 1rem;
  text-align: center;
}
.stat-value { display: block; font-size: 1.8rem; font-variant-numeric: tabular-nums; }
.stat-label { color: var(--muted); font-size: .8rem; text-transform: uppercase; }
.calendar-grid {
  display: grid;
  grid-template-columns: repeat(7, 1fr);
  gap: 3px;
}
.cal-cell {
  aspect-ratio: 1;
  border-radius: 4px;
  background: var(--track);
  font-size: .65rem;
  color: var(--muted);
  padding: 2px;
}
.cal-cell.blank { background: none; }
.cal-cell.active { background: rgba(var(--heat), var(--intensity, .2)); color: var(--fg); }
.bar-row {
  display: grid;
  grid-template-columns: 10rem 1fr 4rem;
  gap: .5rem;
  align-items: center;
  margin: .35rem 0;
}
.bar-label { overflow: hidden; text-overflow: ellipsis; white-space: nowrap; }
.bar-track { background: var(--track); border-radius: 4px; height: 14px; }
.bar-fill {
  height: 100%;
  width: 0;
  border-radius: 4px;
  background: var(--accent);
  transition: width .6s ease-out;
}
.bar-value { text-align: right; font-variant-numeric: tabular-nums; }
.map { height: 320px; border-radius: 10px; margin: .5rem 0; }
.venue-map .map { height: 480px; }
.run-card, .route-card {
  background: var(--card);
  border-radius: 10px;
  padding: 1rem;
  margin: 1rem 0;
}
.run-meta { color: var(--muted); }
.theme-variant { display: none; }
[data-theme="dark"] .theme-variant[data-theme-variant="dark"],
[data-theme="light"] .theme-variant[data-theme-variant="light"] { display: block; }
.regional svg { width: 100%; height: auto; border-radius: 10px; }
.share {
  display: flex;
  gap: 1rem;
  align-items: center;
  justify-content: center;
  padding: 2rem 0;
  color: var(--muted);
}
`

// playbackJS replays what the build precomputed: counter keyframes on
// scroll, bar cascades, Leaflet maps from embedded specs, and the theme
// toggle that tears live maps down and rebuilds them from the other spec.
const playbackJS = `(function () {
  "use strict";

  var FRAME_MS = 1000 / 30;
  var live = {}; // slot -> Leaflet map instance

  function currentTheme() {
    return document.documentElement.getAttribute("data-theme") || "dark";
  }

  function playCounter(card) {
    var script = card.querySelector(".counter-frames");
    var target = document.getElementById(script.getAttribute("data-for"));
    var frames = JSON.parse(script.textContent);
    var i = 0;
    var timer = setInterval(function () {
      if (i >= frames.length) {
        clearInterval(timer);
        target.textContent = target.getAttribute("data-final");
        return;
      }
      target.textContent = frames[i++];
    }, FRAME_MS);
  }

  function fillBars(chart) {
    chart.querySelectorAll(".bar-fill").forEach(function (bar) {
      bar.style.width = bar.getAttribute("data-width") + "%";
    });
  }

  function observeOnce(el, threshold, fire) {
    var seen = false;
    new IntersectionObserver(function (entries, obs) {
      entries.forEach(function (entry) {
        if (seen || entry.intersectionRatio < threshold) return;
        seen = true;
        obs.disconnect();
        fire();
      });
    }, { threshold: [threshold] }).observe(el);
  }

  function specFor(slot, themeName) {
    var sel = '.map-spec[data-slot="' + slot + '"][data-theme="' + themeName + '"]';
    var node = document.querySelector(sel);
    return node ? JSON.parse(node.textContent) : null;
  }

  function buildMap(spec) {
    var map = L.map(spec.slot, { scrollWheelZoom: false });
    L.tileLayer(spec.tileUrl, {
      attribution: spec.attribution,
      maxZoom: 19
    }).addTo(map);
    (spec.markers || []).forEach(function (m) {
      L.circleMarker([m.lat, m.lng], {
        radius: m.radius,
        color: m.color,
        fillColor: m.color,
        fillOpacity: m.fillOpacity,
        weight: m.weight
      }).addTo(map).bindPopup(m.popup);
    });
    (spec.polylines || []).forEach(function (p) {
      p.layers.forEach(function (s) {
        L.polyline(p.coords, {
          color: s.color,
          weight: s.weight,
          opacity: s.opacity
        }).addTo(map);
      });
    });
    if (spec.fit) {
      map.fitBounds(
        [[spec.fit.minLat, spec.fit.minLng], [spec.fit.maxLat, spec.fit.maxLng]],
        { padding: [spec.fit.padding, spec.fit.padding], maxZoom: spec.fit.maxZoom }
      );
    } else {
      map.setView([20, 0], 2);
    }
    return map;
  }

  function renderSlot(slot) {
    var spec = specFor(slot, currentTheme());
    if (!spec) return;
    if (live[slot]) {
      live[slot].remove();
      delete live[slot];
    }
    live[slot] = buildMap(spec);
  }

  function allSlots() {
    var slots = {};
    document.querySelectorAll(".map-spec").forEach(function (node) {
      slots[node.getAttribute("data-slot")] = true;
    });
    return Object.keys(slots);
  }

  document.addEventListener("DOMContentLoaded", function () {
    document.querySelectorAll("[data-counter]").forEach(function (card) {
      var threshold = parseFloat(card.getAttribute("data-threshold"));
      observeOnce(card, threshold, function () { playCounter(card); });
    });
    document.querySelectorAll("[data-bars]").forEach(function (chart) {
      var threshold = parseFloat(chart.getAttribute("data-threshold"));
      observeOnce(chart, threshold, function () { fillBars(chart); });
    });
    if (window.L) allSlots().forEach(renderSlot);

    var toggle = document.getElementById("theme-toggle");
    if (toggle) {
      toggle.addEventListener("click", function () {
        var next = currentTheme() === "dark" ? "light" : "dark";
        document.documentElement.setAttribute("data-theme", next);
        if (window.L) allSlots().forEach(renderSlot);
      });
    }

    document.querySelectorAll("[data-scroll-target]").forEach(function (link) {
      link.addEventListener("click", function (ev) {
        var target = document.getElementById(link.getAttribute("data-scroll-target"));
        if (!target) return;
        ev.preventDefault();
        target.scrollIntoView({ behavior: "smooth", block: "start" });
      });
    });
  });
})();
`
