package list_bookings

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/m04kA/SMC-SiteBookings/internal/service/bookings/models"
)

// ListResponse страница бронирований с метаданными пагинации
type ListResponse struct {
	Meta  Meta                     `json:"_meta"`
	Links Links                    `json:"_links"`
	Data  []models.BookingResponse `json:"data"`
}

type Meta struct {
	TotalCount  int `json:"totalCount"`
	PageCount   int `json:"pageCount"`
	CurrentPage int `json:"currentPage"`
	PerPage     int `json:"perPage"`
}

type Links struct {
	Self string  `json:"self"`
	Next *string `json:"next"`
	Prev *string `json:"prev"`
}

// FromServiceResponse собирает ответ, ссылки строятся от URL запроса
func FromServiceResponse(r *http.Request, resp *models.BookingListResponse) *ListResponse {
	link := func(page int) string {
		return pageURL(r, page, resp.PerPage)
	}

	links := Links{Self: link(resp.CurrentPage)}
	if resp.CurrentPage < resp.PageCount {
		next := link(resp.CurrentPage + 1)
		links.Next = &next
	}
	if resp.CurrentPage > 1 {
		prev := link(resp.CurrentPage - 1)
		links.Prev = &prev
	}

	return &ListResponse{
		Meta: Meta{
			TotalCount:  resp.TotalCount,
			PageCount:   resp.PageCount,
			CurrentPage: resp.CurrentPage,
			PerPage:     resp.PerPage,
		},
		Links: links,
		Data:  resp.Bookings,
	}
}

func pageURL(r *http.Request, page, perPage int) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}

	query := r.URL.Query()
	query.Set("page", strconv.Itoa(page))
	query.Set("per-page", strconv.Itoa(perPage))

	u := url.URL{Scheme: scheme, Host: r.Host, Path: r.URL.Path, RawQuery: query.Encode()}
	return u.String()
}
