package listing_test

import (
	"net/url"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/tracko/internal/core/common/listing"
)

func TestListing(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Listing Suite")
}

var _ = Describe("ParseQuery", func() {
	It("applies defaults for an empty query", func() {
		p := listing.ParseQuery(url.Values{})
		Expect(p.Page).To(Equal(1))
		Expect(p.Limit).To(Equal(10))
		Expect(p.SortOrder).To(Equal("desc"))
	})

	It("clamps out-of-range values back to defaults", func() {
		p := listing.ParseQuery(url.Values{
			"page":  {"-3"},
			"limit": {"5000"},
		})
		Expect(p.Page).To(Equal(1))
		Expect(p.Limit).To(Equal(10))
	})

	It("accepts valid pagination and sorting", func() {
		p := listing.ParseQuery(url.Values{
			"page":      {"3"},
			"limit":     {"25"},
			"search":    {" term "},
			"sortBy":    {"name"},
			"sortOrder": {"ASC"},
		})
		Expect(p.Page).To(Equal(3))
		Expect(p.Limit).To(Equal(25))
		Expect(p.Search).To(Equal("term"))
		Expect(p.SortBy).To(Equal("name"))
		Expect(p.SortOrder).To(Equal("asc"))
		Expect(p.Offset()).To(Equal(50))
	})
})

var _ = Describe("OrderClause", func() {
	allowed := map[string]string{"name": "name", "createdAt": "created_at"}

	It("maps allowed sort fields to columns", func() {
		p := listing.Params{SortBy: "createdAt", SortOrder: "asc"}
		Expect(p.OrderClause(allowed, "created_at")).To(Equal("created_at ASC"))
	})

	It("falls back for unknown sort fields", func() {
		p := listing.Params{SortBy: "password_hash", SortOrder: "desc"}
		Expect(p.OrderClause(allowed, "created_at")).To(Equal("created_at DESC"))
	})
})

var _ = Describe("NewResult", func() {
	It("computes total pages with a partial last page", func() {
		r := listing.NewResult([]int{1, 2, 3}, 7, listing.Params{Page: 1, Limit: 3})
		Expect(r.TotalPages).To(Equal(3))
	})

	It("never returns nil items", func() {
		r := listing.NewResult[int](nil, 0, listing.Params{Page: 1, Limit: 10})
		Expect(r.Items).NotTo(BeNil())
		Expect(r.Items).To(BeEmpty())
	})

	It("falls back to the default limit for a zero-value Params", func() {
		r := listing.NewResult([]int{1, 2, 3}, 3, listing.Params{})
		Expect(r.Limit).To(Equal(listing.DefaultLimit))
		Expect(r.TotalPages).To(Equal(1))
	})
})
