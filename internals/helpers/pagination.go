// internals/helpers/pagination.go
package helper

import (
	"math"
	"strings"

	"github.com/gofiber/fiber/v2"
)

/* ==========================
   Options per jenis endpoint
========================== */

type Options struct {
	DefaultPerPage int
	MaxPerPage     int
	AllowAll       bool // izinkan per_page=all
	AllHardCap     int  // plafon baris saat per_page=all
}

var (
	DefaultOpts = Options{DefaultPerPage: 25, MaxPerPage: 200}
	AdminOpts   = Options{DefaultPerPage: 50, MaxPerPage: 500}
	ExportOpts  = Options{DefaultPerPage: 100, MaxPerPage: 1000, AllowAll: true, AllHardCap: 10_000}
)

/* ==========================
   Params
========================== */

type Params struct {
	Page      int
	PerPage   int
	SortBy    string
	SortOrder string // "asc" | "desc"
	All       bool
}

// ParseFiber membaca page / per_page (alias limit) / sort_by / order (alias
// sort) dari query string. Nilai di luar batas dipangkas ke batas Options.
func ParseFiber(c *fiber.Ctx, defaultSortBy, defaultSortOrder string, opt Options) Params {
	if opt.DefaultPerPage <= 0 {
		opt.DefaultPerPage = 25
	}
	if opt.MaxPerPage <= 0 {
		opt.MaxPerPage = 200
	}

	p := Params{
		Page:      c.QueryInt("page", 1),
		SortBy:    strings.TrimSpace(c.Query("sort_by")),
		SortOrder: strings.ToLower(strings.TrimSpace(c.Query("order", c.Query("sort")))),
	}
	if p.Page < 1 {
		p.Page = 1
	}

	rawPerPage := strings.TrimSpace(c.Query("per_page", c.Query("limit")))
	if opt.AllowAll && strings.EqualFold(rawPerPage, "all") {
		p.All = true
		p.PerPage = opt.AllHardCap
	} else {
		p.PerPage = c.QueryInt("per_page", c.QueryInt("limit", opt.DefaultPerPage))
		if p.PerPage < 1 {
			p.PerPage = opt.DefaultPerPage
		}
		if p.PerPage > opt.MaxPerPage {
			p.PerPage = opt.MaxPerPage
		}
	}

	if p.SortBy == "" {
		p.SortBy = defaultSortBy
	}
	if p.SortOrder != "asc" && p.SortOrder != "desc" {
		p.SortOrder = strings.ToLower(defaultSortOrder)
		if p.SortOrder != "asc" {
			p.SortOrder = "desc"
		}
	}
	return p
}

func (p Params) Limit() int { return p.PerPage }

func (p Params) Offset() int {
	if p.All {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}

// OrderClause membangun klausa untuk gorm .Order(). sort_by dari klien
// dipetakan lewat whitelist kolom supaya tidak bisa membawa SQL.
func (p Params) OrderClause(allowed map[string]string, defaultKey string) string {
	col, ok := allowed[p.SortBy]
	if !ok {
		col = allowed[defaultKey]
	}
	dir := "DESC"
	if p.SortOrder == "asc" {
		dir = "ASC"
	}
	return col + " " + dir
}

/* ==========================
   Meta untuk response list
========================== */

type Meta struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func BuildMeta(total int64, p Params) Meta {
	pages := 1
	if !p.All && p.PerPage > 0 {
		pages = int(math.Ceil(float64(total) / float64(p.PerPage)))
		if pages < 1 {
			pages = 1
		}
	}
	return Meta{Page: p.Page, PerPage: p.PerPage, Total: total, TotalPages: pages}
}
