package ptphttp

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi"

	"github.com/nasa-jpl/go-ptp/ptp"
	"github.com/nasa-jpl/go-ptp/ptp/ptptest"
)

func newTestServer(t *testing.T, m *ptptest.MockTransport) (*httptest.Server, *ptp.Session) {
	t.Helper()
	session := ptptest.NewSession(m, nil)
	h := NewHandler(session)
	mux := chi.NewRouter()
	h.RT().Bind(mux)
	return httptest.NewServer(mux), session
}

func encodeContainer(kind ptp.ContainerKind, code uint16, tid uint32, payload []byte) []byte {
	return ptp.EmitContainer(kind, code, tid, payload)
}

func TestDeviceInfoEndpoint(t *testing.T) {
	m := &ptptest.MockTransport{}
	deviceInfoBytes := func() []byte {
		c := ptp.NewWriteCursor()
		c.WriteU16(100)
		c.WriteU32(0)
		c.WriteU16(0)
		c.WritePTPString("")
		c.WriteU16(0)
		c.WriteU16Array(nil)
		c.WriteU16Array(nil)
		c.WriteU16Array(nil)
		c.WriteU16Array(nil)
		c.WriteU16Array(nil)
		c.WritePTPString("Acme")
		c.WritePTPString("X1")
		c.WritePTPString("1.0")
		c.WritePTPString("SN1")
		return c.Bytes()
	}()
	data := encodeContainer(ptp.ContainerData, 0x1001, 0, deviceInfoBytes)
	resp := encodeContainer(ptp.ContainerResponse, ptp.RC_Ok, 0, nil)
	m.QueueContainer(append(data, resp...), 256*1024)

	srv, _ := newTestServer(t, m)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/device-info")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	var info ptp.DeviceInfo
	if err := json.NewDecoder(res.Body).Decode(&info); err != nil {
		t.Fatal(err)
	}
	if info.Manufacturer != "Acme" || info.Model != "X1" {
		t.Fatalf("got %+v", info)
	}
}

func TestStorageIDsEndpointPropagatesResponseErrorAsBadGateway(t *testing.T) {
	m := &ptptest.MockTransport{}
	m.QueueContainer(encodeContainer(ptp.ContainerResponse, ptp.RC_GeneralError, 0, nil), 256*1024)

	srv, _ := newTestServer(t, m)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/storage-ids")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusBadGateway {
		t.Fatalf("status = %d, want 502", res.StatusCode)
	}
}

func TestListOfRoutesEndpoint(t *testing.T) {
	m := &ptptest.MockTransport{}
	srv, _ := newTestServer(t, m)
	defer srv.Close()

	res, err := http.Get(srv.URL + "/list-of-routes")
	if err != nil {
		t.Fatal(err)
	}
	defer res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", res.StatusCode)
	}
	var routes []string
	if err := json.NewDecoder(res.Body).Decode(&routes); err != nil {
		t.Fatal(err)
	}
	if len(routes) == 0 {
		t.Fatal("expected a non-empty route list")
	}
}
