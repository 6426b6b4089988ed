// Package previews manages the org media preview list: uploaded images
// plus YouTube/Loom video embeds. Unlike envelope sections, preview items
// carry an explicit order field used for drag persistence; the list keeps
// it contiguous and zero-based through every mutation.
package previews

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/lumenlearn/pagecraft/internal/domain"
)

// Kind distinguishes preview item sources.
type Kind string

const (
	KindImage   Kind = "image"
	KindYouTube Kind = "youtube"
	KindLoom    Kind = "loom"
)

// Preview is one entry of the preview strip.
type Preview struct {
	ID           string `json:"id"`
	URL          string `json:"url"`
	Type         Kind   `json:"type"`
	Filename     string `json:"filename,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl,omitempty"`
	Order        int    `json:"order"`
}

// StoredImage is the persisted shape of an image preview.
type StoredImage struct {
	Filename string `json:"filename"`
	Order    *int   `json:"order,omitempty"`
}

// StoredVideo is the persisted shape of a video preview.
type StoredVideo struct {
	ID    string `json:"id"`
	URL   string `json:"url"`
	Type  Kind   `json:"type"`
	Order *int   `json:"order,omitempty"`
}

// Stored is the persisted previews config.
type Stored struct {
	Images []StoredImage `json:"images"`
	Videos []StoredVideo `json:"videos"`
}

// List holds the working preview order.
type List struct {
	items []Preview
}

// Load builds the working list from the stored config. Images with empty
// filenames are skipped; items sort by their stored order, falling back
// to their positional index (videos after images). The result is
// renumbered so orders are contiguous and zero-based.
func Load(raw []byte, resolveImageURL func(filename string) string) (*List, error) {
	var stored Stored
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &stored); err != nil {
			return nil, fmt.Errorf("decoding previews config: %w", err)
		}
	}

	l := &List{}
	for i, img := range stored.Images {
		if img.Filename == "" {
			continue
		}
		order := i
		if img.Order != nil {
			order = *img.Order
		}
		l.items = append(l.items, Preview{
			ID:       img.Filename,
			URL:      resolveImageURL(img.Filename),
			Type:     KindImage,
			Filename: img.Filename,
			Order:    order,
		})
	}
	imageCount := len(l.items)
	for i, vid := range stored.Videos {
		if vid.ID == "" {
			continue
		}
		order := imageCount + i
		if vid.Order != nil {
			order = *vid.Order
		}
		l.items = append(l.items, Preview{
			ID:           vid.ID,
			URL:          vid.URL,
			Type:         vid.Type,
			ThumbnailURL: videoThumbnail(vid),
			Order:        order,
		})
	}

	sort.SliceStable(l.items, func(a, b int) bool {
		return l.items[a].Order < l.items[b].Order
	})
	l.renumber()
	return l, nil
}

// Items returns a snapshot of the current order.
func (l *List) Items() []Preview {
	out := make([]Preview, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds a new item at the end of the strip.
func (l *List) Append(p Preview) {
	p.Order = len(l.items)
	l.items = append(l.items, p)
}

// Remove deletes the item with the given id and closes the gap.
func (l *List) Remove(id string) {
	kept := l.items[:0]
	for _, p := range l.items {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	l.items = kept
	l.renumber()
}

// Reorder moves the item at src to dst and renumbers the whole list.
func (l *List) Reorder(src, dst int) error {
	if src < 0 || src >= len(l.items) || dst < 0 || dst >= len(l.items) {
		return fmt.Errorf("%w: %d -> %d", domain.ErrIndexOutOfRange, src, dst)
	}
	moved := l.items[src]
	rest := append(append([]Preview{}, l.items[:src]...), l.items[src+1:]...)
	l.items = append(append(append([]Preview{}, rest[:dst]...), moved), rest[dst:]...)
	l.renumber()
	return nil
}

// Stored converts the working list back to its persisted shape.
func (l *List) Stored() Stored {
	var out Stored
	for _, p := range l.items {
		order := p.Order
		switch p.Type {
		case KindImage:
			out.Images = append(out.Images, StoredImage{Filename: p.Filename, Order: &order})
		default:
			out.Videos = append(out.Videos, StoredVideo{ID: p.ID, URL: p.URL, Type: p.Type, Order: &order})
		}
	}
	return out
}

func (l *List) renumber() {
	for i := range l.items {
		l.items[i].Order = i
	}
}

func videoThumbnail(v StoredVideo) string {
	if v.Type == KindYouTube {
		return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", v.ID)
	}
	return ""
}
