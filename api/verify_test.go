package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"mimcstark/kdf"
	"mimcstark/stark"
)

func postVerify(engine http.Handler, proof *stark.Proof) *httptest.ResponseRecorder {
	body, _ := json.Marshal(proof)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/verify", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

var _ = Describe("POST /api/v1/verify", func() {
	var engine http.Handler

	BeforeEach(func() {
		engine = NewEngine()
	})

	It("accepts a valid native-mimc hash-integrity proof", func() {
		proof, err := stark.ProveHashIntegrity([]byte("abc"), kdf.AlgorithmNativeMimc, kdf.Params{})
		Expect(err).NotTo(HaveOccurred())

		rec := postVerify(engine, proof)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp verifyResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Success).To(BeTrue())
	})

	It("accepts a valid knowledge-of-preimage proof", func() {
		proof, err := stark.ProveKnowledgeOfPreimage([]byte("deadbeef"), []byte("nonce-1"))
		Expect(err).NotTo(HaveOccurred())

		rec := postVerify(engine, proof)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp verifyResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Success).To(BeTrue())
	})

	It("rejects a tampered mimc_output with a BoundaryMismatch message", func() {
		proof, err := stark.ProveHashIntegrity([]byte("abc"), kdf.AlgorithmNativeMimc, kdf.Params{})
		Expect(err).NotTo(HaveOccurred())
		proof.PublicInputs.MimcOutput = "1"
		proof.PublicInputs.OutputArtifact = "1"

		rec := postVerify(engine, proof)
		Expect(rec.Code).To(Equal(http.StatusOK))

		var resp verifyResponse
		Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
		Expect(resp.Success).To(BeFalse())
		Expect(resp.Error).To(ContainSubstring("BoundaryMismatch"))
	})

	It("rejects an unparseable request body", func() {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/verify", bytes.NewReader([]byte("not json")))
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusUnprocessableEntity))
	})

	It("responds to /healthz", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		rec := httptest.NewRecorder()
		engine.ServeHTTP(rec, req)
		Expect(rec.Code).To(Equal(http.StatusOK))
	})
})
