package rest_test

import (
	"context"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestOpenAPIContract(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "OpenAPI Contract Suite")
}

var _ = Describe("openapi.yml", func() {
	var doc *openapi3.T

	BeforeEach(func() {
		loader := openapi3.NewLoader()
		var err error
		doc, err = loader.LoadFromFile("../../../api/openapi.yml")
		Expect(err).NotTo(HaveOccurred())
	})

	It("is a valid OpenAPI 3 document", func() {
		Expect(doc.Validate(context.Background())).To(Succeed())
	})

	It("documents every registered route", func() {
		expected := []string{
			"/api/login",
			"/api/signup",
			"/api/refresh",
			"/api/health",
			"/api/ping",
			"/api/users/me",
			"/api/dashboard/stats",
			"/admin/users",
			"/admin/users/{id}",
			"/admin/departments",
			"/admin/departments/{id}",
			"/admin/designations",
			"/admin/designations/{id}",
			"/admin/workstreams",
			"/admin/workstreams/{id}",
			"/admin/projects",
			"/admin/projects/{id}",
			"/admin/userTasks",
			"/admin/userTasks/{id}",
			"/admin/userTasks/finalSubmit",
		}
		for _, path := range expected {
			Expect(doc.Paths.Find(path)).NotTo(BeNil(), "missing path %s", path)
		}
	})

	It("declares the bulk submit operation", func() {
		item := doc.Paths.Find("/admin/userTasks/finalSubmit")
		Expect(item).NotTo(BeNil())
		Expect(item.Post).NotTo(BeNil())
	})

	It("restricts the dashboard period values", func() {
		item := doc.Paths.Find("/api/dashboard/stats")
		Expect(item).NotTo(BeNil())
		Expect(item.Get).NotTo(BeNil())

		var periodParam *openapi3.Parameter
		for _, ref := range item.Get.Parameters {
			if ref.Value != nil && ref.Value.Name == "period" {
				periodParam = ref.Value
			}
		}
		Expect(periodParam).NotTo(BeNil())
		Expect(periodParam.Schema.Value.Enum).To(HaveLen(4))
	})
})
