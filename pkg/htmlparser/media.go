package htmlparser

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/Hamish-Leahy/Prism-sub000/models"
	"github.com/Hamish-Leahy/Prism-sub000/pkg/urlresolver"
)

// extractMedia describes the embedded resources: images, video, audio and
// iframes. Source URLs are resolved against the document base.
func extractMedia(doc *goquery.Document, model *models.DocumentModel, baseURL string) {
	media := &model.Media

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		media.Images = append(media.Images, models.ImageAsset{
			Src:     urlresolver.Resolve(s.AttrOr("src", ""), baseURL),
			Alt:     s.AttrOr("alt", ""),
			Title:   s.AttrOr("title", ""),
			Width:   s.AttrOr("width", ""),
			Height:  s.AttrOr("height", ""),
			Class:   s.AttrOr("class", ""),
			Loading: s.AttrOr("loading", ""),
		})
	})

	doc.Find("video").Each(func(_ int, s *goquery.Selection) {
		video := models.VideoAsset{
			Src:     urlresolver.Resolve(s.AttrOr("src", ""), baseURL),
			Poster:  urlresolver.Resolve(s.AttrOr("poster", ""), baseURL),
			Sources: nestedSources(s, baseURL),
		}
		_, video.Controls = s.Attr("controls")
		_, video.Autoplay = s.Attr("autoplay")
		_, video.Loop = s.Attr("loop")
		_, video.Muted = s.Attr("muted")
		media.Videos = append(media.Videos, video)
	})

	doc.Find("audio").Each(func(_ int, s *goquery.Selection) {
		audio := models.AudioAsset{
			Src:     urlresolver.Resolve(s.AttrOr("src", ""), baseURL),
			Sources: nestedSources(s, baseURL),
		}
		_, audio.Controls = s.Attr("controls")
		_, audio.Autoplay = s.Attr("autoplay")
		_, audio.Loop = s.Attr("loop")
		media.Audio = append(media.Audio, audio)
	})

	doc.Find("iframe").Each(func(_ int, s *goquery.Selection) {
		frame := models.IframeAsset{
			Src:         urlresolver.Resolve(s.AttrOr("src", ""), baseURL),
			Title:       s.AttrOr("title", ""),
			Width:       s.AttrOr("width", ""),
			Height:      s.AttrOr("height", ""),
			Frameborder: s.AttrOr("frameborder", ""),
			Sandbox:     s.AttrOr("sandbox", ""),
		}
		_, frame.AllowFullscreen = s.Attr("allowfullscreen")
		media.Iframes = append(media.Iframes, frame)
	})
}

func nestedSources(s *goquery.Selection, baseURL string) []models.MediaSource {
	var sources []models.MediaSource
	s.Find("source").Each(func(_ int, src *goquery.Selection) {
		sources = append(sources, models.MediaSource{
			Src:  urlresolver.Resolve(src.AttrOr("src", ""), baseURL),
			Type: src.AttrOr("type", ""),
		})
	})
	return sources
}
