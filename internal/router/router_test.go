package router_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ganaderia-dashboard/internal/domain/reports"
	"ganaderia-dashboard/internal/platform/metrics"
	"ganaderia-dashboard/internal/router"
)

func fixedNow() time.Time { return time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC) }

func newServer(t *testing.T) *httptest.Server {
	t.Helper()
	ts := httptest.NewServer(router.NewRouter(router.Options{
		Metrics: metrics.New(),
		Company: reports.Company{Name: "Agropecuaria El Paraíso", Address: "Carretera Nacional, Km 12"},
		Now:     fixedNow,
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestHTTP_FamilyReport_AllFamilies(t *testing.T) {
	ts := newServer(t)

	// grupo 1 = Bovinos (semilla)
	holstein := createFamily(t, ts.URL, "Holstein", 1)
	createFamily(t, ts.URL, "Jersey", 1)

	for _, a := range []map[string]any{
		{"codigo_ani": "A1", "nombre_ani": "Aurora", "id_gru": 1, "codigo_fam": holstein, "sexo_ani": "Hembra", "status_ani": 1},
		{"codigo_ani": "A2", "nombre_ani": "Bella", "id_gru": "1", "codigo_fam": holstein, "sexo_ani": "Hembra", "status_ani": "1"},
	} {
		st, body := doReq(t, ts.URL, "POST", "/api/animal", a)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/api/reportes/familiaanimal?familia=Todos", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 family report, got %d body=%s", st, string(body))
	}

	var rep struct {
		Familias []struct {
			Nombre   string            `json:"nombre_fam"`
			Animales []json.RawMessage `json:"animales"`
		} `json:"familias"`
		Conteo        []json.RawMessage `json:"conteo"`
		TotalAnimales int               `json:"totalAnimales"`
	}
	if err := json.Unmarshal(body, &rep); err != nil {
		t.Fatalf("decode: %v body=%s", err, string(body))
	}
	if len(rep.Familias) != 2 {
		t.Fatalf("expected 2 families, got %d", len(rep.Familias))
	}
	if len(rep.Familias[0].Animales) != 2 || len(rep.Familias[1].Animales) != 0 {
		t.Fatalf("expected 2+0 animals, got %d+%d", len(rep.Familias[0].Animales), len(rep.Familias[1].Animales))
	}
	if rep.Familias[1].Animales == nil {
		t.Fatalf("expected empty animal list, got null")
	}
	if rep.TotalAnimales != 2 || len(rep.Conteo) != 2 {
		t.Fatalf("unexpected totals: total=%d conteo=%d", rep.TotalAnimales, len(rep.Conteo))
	}
}

func TestHTTP_UpdateAnimal_PersistenceDefaults(t *testing.T) {
	ts := newServer(t)

	st, body := doReq(t, ts.URL, "POST", "/api/animal", map[string]any{
		"codigo_ani": "123", "nombre_ani": "Lucero", "chip_ani": "CH-9", "sexo_ani": "Macho", "peso_ani": 410, "status_ani": 1,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create animal, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "PUT", "/api/animal/123", map[string]any{
		"codigo_ani": "123", "nombre_ani": "Lucero", "chip_ani": "", "sexo_ani": "Macho", "peso_ani": -5, "status_ani": 2,
	})
	if st != http.StatusOK {
		t.Fatalf("expected 200 update, got %d body=%s", st, string(body))
	}

	st, body = doReq(t, ts.URL, "GET", "/api/animal/123", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 get, got %d body=%s", st, string(body))
	}
	var got struct {
		Chip   string      `json:"chip_ani"`
		Weight json.Number `json:"peso_ani"`
		Status int         `json:"status_ani"`
	}
	_ = json.Unmarshal(body, &got)
	if got.Chip != "0" || got.Weight.String() != "1" || got.Status != 2 {
		t.Fatalf("unexpected stored animal: %+v", got)
	}

	// PUT sobre un código inexistente
	st, body = doReq(t, ts.URL, "PUT", "/api/animal/nope", map[string]any{"nombre_ani": "X", "status_ani": 1})
	if st != http.StatusNotFound || !strings.Contains(string(body), "No se encontró el animal para actualizar.") {
		t.Fatalf("expected 404 update missing, got %d body=%s", st, string(body))
	}

	// borrado lógico: después no existe
	if st, body := doReq(t, ts.URL, "DELETE", "/api/animal/123", nil); st != http.StatusOK {
		t.Fatalf("expected 200 delete, got %d body=%s", st, string(body))
	}
	if st, _ := doReq(t, ts.URL, "GET", "/api/animal/123", nil); st != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", st)
	}
}

func TestHTTP_MilkMonthly(t *testing.T) {
	ts := newServer(t)

	for _, rec := range []map[string]any{
		{"fecha_lec": "2024-03-05", "litros_lec": 12.5},
		{"fecha_lec": "2024-03-20", "litros_lec": "7.5"},
		{"fecha_lec": "2024-07-01", "litros_lec": 30},
		{"fecha_lec": "2023-07-01", "litros_lec": 99},
	} {
		st, body := doReq(t, ts.URL, "POST", "/api/produccionleche", rec)
		if st != http.StatusCreated {
			t.Fatalf("expected 201 milk record, got %d body=%s", st, string(body))
		}
	}

	st, body := doReq(t, ts.URL, "GET", "/api/produccionleche/mensual", nil)
	if st != http.StatusOK {
		t.Fatalf("expected 200 monthly, got %d body=%s", st, string(body))
	}
	var months []struct {
		Mes   string      `json:"mes"`
		Total json.Number `json:"total_litros"`
	}
	_ = json.Unmarshal(body, &months)
	if len(months) != 12 {
		t.Fatalf("expected 12 months, got %d", len(months))
	}
	if months[2].Mes != "Marzo" || months[2].Total.String() != "20" {
		t.Fatalf("unexpected March: %+v", months[2])
	}
	if months[6].Mes != "Julio" || months[6].Total.String() != "30" {
		t.Fatalf("unexpected July: %+v", months[6])
	}
	if months[0].Total.String() != "0" {
		t.Fatalf("expected zero January, got %s", months[0].Total)
	}

	if st, _ := doReq(t, ts.URL, "GET", "/api/produccionleche/mensual?year=abc", nil); st != http.StatusBadRequest {
		t.Fatalf("expected 400 invalid year, got %d", st)
	}
}

func TestHTTP_NotFound(t *testing.T) {
	ts := newServer(t)

	cases := []struct {
		path string
		want int
	}{
		{"/api/animal/ghost", http.StatusNotFound},
		{"/api/cliente/ghost", http.StatusNotFound},
		{"/api/grupoAnimales/99", http.StatusNotFound},
		{"/api/grupoAnimales/abc", http.StatusBadRequest},
		{"/api/familia/abc", http.StatusBadRequest},
	}
	for _, tc := range cases {
		if st, body := doReq(t, ts.URL, "GET", tc.path, nil); st != tc.want {
			t.Fatalf("%s: expected %d, got %d body=%s", tc.path, tc.want, st, string(body))
		}
	}
}

func TestHTTP_ReportPDF(t *testing.T) {
	ts := newServer(t)

	res, err := http.Get(ts.URL + "/api/reportes/animales/pdf?categoria=Bovinos")
	if err != nil {
		t.Fatalf("get pdf: %v", err)
	}
	defer res.Body.Close()
	body, _ := io.ReadAll(res.Body)

	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 pdf, got %d body=%s", res.StatusCode, string(body))
	}
	if ct := res.Header.Get("Content-Type"); ct != "application/pdf" {
		t.Fatalf("unexpected content type %q", ct)
	}
	wantDisp := `attachment; filename="Reporte_Animales_Bovinos_2024-06-15.pdf"`
	if cd := res.Header.Get("Content-Disposition"); cd != wantDisp {
		t.Fatalf("unexpected disposition %q", cd)
	}
	if res.Header.Get("X-Report-ID") == "" || res.Header.Get("X-Request-ID") == "" {
		t.Fatalf("missing report/request id headers")
	}
	if !bytes.HasPrefix(body, []byte("%PDF-")) {
		t.Fatalf("body is not a pdf")
	}

	// las métricas cuentan el reporte
	st, metricsBody := doReq(t, ts.URL, "GET", "/metrics", nil)
	if st != http.StatusOK || !strings.Contains(string(metricsBody), `reports_generated_total{format="pdf",kind="Animales"} 1`) {
		t.Fatalf("expected report counter in /metrics, got %d", st)
	}
}

func TestHTTP_HealthAndSwagger(t *testing.T) {
	ts := newServer(t)

	if st, body := doReq(t, ts.URL, "GET", "/health", nil); st != http.StatusOK || string(body) != "ok" {
		t.Fatalf("unexpected health: %d %s", st, string(body))
	}
	if st, body := doReq(t, ts.URL, "GET", "/swagger/doc.json", nil); st != http.StatusOK || !strings.Contains(string(body), "/api/animal") {
		t.Fatalf("unexpected swagger doc: %d", st)
	}
}

func createFamily(t *testing.T, baseURL, name string, groupID int64) int64 {
	t.Helper()

	st, body := doReq(t, baseURL, "POST", "/api/familia", map[string]any{
		"name_fam": name,
		"id_gru":   groupID,
	})
	if st != http.StatusCreated {
		t.Fatalf("expected 201 create family, got %d body=%s", st, string(body))
	}

	var resp struct {
		Code int64 `json:"codigo_fam"`
	}
	_ = json.Unmarshal(body, &resp)
	if resp.Code == 0 {
		t.Fatalf("create family: missing codigo_fam body=%s", string(body))
	}
	return resp.Code
}

func doReq(t *testing.T, baseURL, method, path string, body any) (int, []byte) {
	t.Helper()

	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("json marshal: %v", err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, baseURL+path, rdr)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do request: %v", err)
	}
	defer res.Body.Close()

	respBody, _ := io.ReadAll(res.Body)
	return res.StatusCode, respBody
}
