package catalog

import (
	"sort"
	"strconv"
	"strings"

	"allure-rental/internal/domain/dress"
	"allure-rental/internal/domain/money"
	"allure-rental/internal/pkg/errs"

	"github.com/google/uuid"
)

type listEnvelope struct {
	Success bool           `json:"success"`
	Total   int            `json:"total"`
	Page    int            `json:"page"`
	Limit   int            `json:"limit"`
	Data    []dressPayload `json:"data"`
}

type singleEnvelope struct {
	Success bool          `json:"success"`
	Data    *dressPayload `json:"data"`
}

type dressPayload struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Reference       string   `json:"reference"`
	PriceHT         decimal  `json:"price_ht"`
	PriceTTC        decimal  `json:"price_ttc"`
	PricePerDayHT   decimal  `json:"price_per_day_ht"`
	PricePerDayTTC  decimal  `json:"price_per_day_ttc"`
	Images          []string `json:"images"`
	PublishedPost   bool     `json:"published_post"`
	TypeID          *string  `json:"type_id"`
	TypeName        *string  `json:"type_name"`
	TypeDescription *string  `json:"type_description"`
	SizeID          *string  `json:"size_id"`
	SizeName        *string  `json:"size_name"`
	ColorID         *string  `json:"color_id"`
	ColorName       *string  `json:"color_name"`
	HexCode         *string  `json:"hex_code"`
}

func (p dressPayload) toDomain() (*dress.Dress, error) {
	id, err := uuid.Parse(p.ID)
	if err != nil {
		return nil, errs.Wrapf(ErrSchema, "id %q", p.ID)
	}
	perDay, err := money.Parse(string(p.PricePerDayTTC))
	if err != nil {
		return nil, errs.Wrapf(ErrSchema, "price_per_day_ttc of %s: %v", id, err)
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	d := &dress.Dress{
		ID:          id,
		Name:        strings.TrimSpace(p.Name),
		Reference:   p.Reference,
		PricePerDay: perDay,
		Images:      images,
		TypeID:      deref(p.TypeID),
		TypeName:    deref(p.TypeName),
		TypeDesc:    deref(p.TypeDescription),
		SizeID:      deref(p.SizeID),
		SizeName:    deref(p.SizeName),
		ColorID:     deref(p.ColorID),
		ColorName:   deref(p.ColorName),
		HexCode:     deref(p.HexCode),
		Published:   p.PublishedPost,
	}
	if err := d.Validate(); err != nil {
		return nil, errs.Wrapf(ErrSchema, "dress %s: %v", id, err)
	}
	return d, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func buildFacets(dresses []*dress.Dress) *dress.Facets {
	types := map[string]dress.Facet{}
	sizes := map[string]dress.Facet{}
	colors := map[string]dress.Facet{}

	for _, d := range dresses {
		if d.TypeID != "" && d.TypeName != "" {
			if _, ok := types[d.TypeID]; !ok {
				types[d.TypeID] = dress.Facet{ID: d.TypeID, Name: d.TypeName, Description: d.TypeDesc}
			}
		}
		if d.SizeID != "" && d.SizeName != "" {
			if _, ok := sizes[d.SizeID]; !ok {
				sizes[d.SizeID] = dress.Facet{ID: d.SizeID, Name: d.SizeName}
			}
		}
		if d.ColorID != "" && d.ColorName != "" {
			if _, ok := colors[d.ColorID]; !ok {
				colors[d.ColorID] = dress.Facet{ID: d.ColorID, Name: d.ColorName, HexCode: d.HexCode}
			}
		}
	}

	out := &dress.Facets{
		Types:  values(types),
		Sizes:  values(sizes),
		Colors: values(colors),
	}
	sort.Slice(out.Types, func(i, j int) bool { return byName(out.Types[i], out.Types[j]) })
	sort.Slice(out.Colors, func(i, j int) bool { return byName(out.Colors[i], out.Colors[j]) })
	sort.Slice(out.Sizes, func(i, j int) bool {
		a, b := out.Sizes[i], out.Sizes[j]
		if a.Name == b.Name {
			return a.ID < b.ID
		}
		return sizeLess(a.Name, b.Name)
	})
	return out
}

func values(m map[string]dress.Facet) []dress.Facet {
	out := make([]dress.Facet, 0, len(m))
	for _, f := range m {
		out = append(out, f)
	}
	return out
}

func byName(a, b dress.Facet) bool {
	if a.Name == b.Name {
		return a.ID < b.ID
	}
	return a.Name < b.Name
}

// sizeLess orders "34" before "36" before "XL". Numeric sizes come first.
func sizeLess(a, b string) bool {
	na, errA := strconv.Atoi(strings.TrimSpace(a))
	nb, errB := strconv.Atoi(strings.TrimSpace(b))
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	default:
		return a < b
	}
}
