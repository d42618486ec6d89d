package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dronefleet-service/internal/apperr"
	"dronefleet-service/internal/domain"
	"dronefleet-service/internal/http/handlers"
)

type stubPackageUsecase struct {
	listFn   func(ctx context.Context) ([]domain.Package, error)
	createFn func(ctx context.Context, p *domain.Package) (*domain.Package, error)
	updateFn func(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error)
	deleteFn func(ctx context.Context, id int64) (*domain.Package, error)
}

func (s *stubPackageUsecase) List(ctx context.Context) ([]domain.Package, error) {
	if s.listFn == nil {
		panic("List not expected in this test")
	}
	return s.listFn(ctx)
}

func (s *stubPackageUsecase) Create(ctx context.Context, p *domain.Package) (*domain.Package, error) {
	if s.createFn == nil {
		panic("Create not expected in this test")
	}
	return s.createFn(ctx, p)
}

func (s *stubPackageUsecase) UpdatePartial(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error) {
	if s.updateFn == nil {
		panic("UpdatePartial not expected in this test")
	}
	return s.updateFn(ctx, u)
}

func (s *stubPackageUsecase) Delete(ctx context.Context, id int64) (*domain.Package, error) {
	if s.deleteFn == nil {
		panic("Delete not expected in this test")
	}
	return s.deleteFn(ctx, id)
}

func samplePackage() domain.Package {
	return domain.Package{
		ID:                12,
		Priority:          domain.PriorityExpress,
		Dims:              domain.Dimensions{Length: 30, Width: 20, Height: 10},
		WeightKg:          2.5,
		SenderAddressID:   1,
		ReceiverAddressID: 2,
		Sender:            &domain.Address{ID: 1, Street: "1 Main St", City: "Springfield", Zip: "11111"},
		Receiver:          &domain.Address{ID: 2, Street: "2 Oak Ave", City: "Shelbyville", Zip: "22222"},
	}
}

func TestPackageHandler_List_OK(t *testing.T) {
	t.Parallel()

	uc := &stubPackageUsecase{
		listFn: func(ctx context.Context) ([]domain.Package, error) {
			return []domain.Package{samplePackage()}, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/packages", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `[{
        "id": "PKG-012",
        "priority": "Express",
        "dimensions": "30x20x10 cm",
        "weight": "2.5 kg",
        "sender": "1 Main St, Springfield 11111",
        "receiver": "2 Oak Ave, Shelbyville 22222",
        "deliveryId": "DEL-2024-XXX",
        "status": "Pending"
    }]`, rr.Body.String())
}

func TestPackageHandler_List_MissingAddressFallback(t *testing.T) {
	t.Parallel()

	p := samplePackage()
	p.Receiver = nil

	uc := &stubPackageUsecase{
		listFn: func(ctx context.Context) ([]domain.Package, error) {
			return []domain.Package{p}, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)

	rr := httptest.NewRecorder()
	h.List(rr, httptest.NewRequest(http.MethodGet, "/packages", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"receiver":"Address #2"`)
}

func TestPackageHandler_Create_OK(t *testing.T) {
	t.Parallel()

	body := `{"priority":"Express","dimensions":"30x20x10 cm","weight":"2.5 kg","senderAddressId":1,"receiverAddressId":2}`
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		createFn: func(ctx context.Context, p *domain.Package) (*domain.Package, error) {
			require.Equal(t, domain.PriorityExpress, p.Priority)
			require.Equal(t, 30.0, p.Dims.Length)
			require.Equal(t, 2.5, p.WeightKg)
			created := samplePackage()
			return &created, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":"PKG-012"`)
	assert.Contains(t, rr.Body.String(), `"status":"Pending"`)
}

func TestPackageHandler_Create_NumericWeight(t *testing.T) {
	t.Parallel()

	body := `{"priority":"Standard","dimensions":"10x10x10","weight":3,"senderAddressId":1,"receiverAddressId":2}`
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		createFn: func(ctx context.Context, p *domain.Package) (*domain.Package, error) {
			require.Equal(t, 3.0, p.WeightKg)
			created := samplePackage()
			return &created, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Create(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)
}

func TestPackageHandler_Create_BadDimensions(t *testing.T) {
	t.Parallel()

	body := `{"priority":"Express","dimensions":"big","weight":"2.5 kg","senderAddressId":1,"receiverAddressId":2}`
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h := handlers.NewPackageHandler(testLogger(), &stubPackageUsecase{})
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "dimensions must be in format LxWxH"}`, rr.Body.String())
}

func TestPackageHandler_Create_MissingField(t *testing.T) {
	t.Parallel()

	body := `{"priority":"Express","dimensions":"30x20x10","senderAddressId":1,"receiverAddressId":2}`
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body))
	rr := httptest.NewRecorder()

	h := handlers.NewPackageHandler(testLogger(), &stubPackageUsecase{})
	h.Create(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "all fields are required"}`, rr.Body.String())
}

func TestPackageHandler_Create_UnknownAddress(t *testing.T) {
	t.Parallel()

	body := `{"priority":"Express","dimensions":"30x20x10","weight":"2.5","senderAddressId":1,"receiverAddressId":999}`
	req := httptest.NewRequest(http.MethodPost, "/packages", strings.NewReader(body))
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		createFn: func(ctx context.Context, p *domain.Package) (*domain.Package, error) {
			return nil, apperr.ErrConflict
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Create(rr, req)

	require.Equal(t, http.StatusConflict, rr.Code)
}

func TestPackageHandler_Update_OK(t *testing.T) {
	t.Parallel()

	body := `{"weightkg":4.5,"prioritylevel":"Standard"}`
	req := httptest.NewRequest(http.MethodPut, "/packages/PKG-012", strings.NewReader(body))
	req = withRouteParam(req, "id", "PKG-012")
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		updateFn: func(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error) {
			require.EqualValues(t, 12, u.ID)
			require.NotNil(t, u.WeightKg)
			require.Equal(t, 4.5, *u.WeightKg)
			require.NotNil(t, u.Priority)
			require.Equal(t, domain.PriorityStandard, *u.Priority)
			require.Nil(t, u.Length)
			p := samplePackage()
			p.WeightKg = 4.5
			p.Priority = domain.PriorityStandard
			return &p, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Update(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"weight":"4.5 kg"`)
}

func TestPackageHandler_Update_MalformedRef(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/packages/BOX-1", strings.NewReader(`{}`))
	req = withRouteParam(req, "id", "BOX-1")
	rr := httptest.NewRecorder()

	h := handlers.NewPackageHandler(testLogger(), &stubPackageUsecase{})
	h.Update(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"error": "invalid package id"}`, rr.Body.String())
}

func TestPackageHandler_Update_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPut, "/packages/PKG-099", strings.NewReader(`{"weightkg":1}`))
	req = withRouteParam(req, "id", "PKG-099")
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		updateFn: func(ctx context.Context, u domain.PartialPackageUpdate) (*domain.Package, error) {
			return nil, apperr.ErrNotFound
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Update(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"error": "package not found"}`, rr.Body.String())
}

func TestPackageHandler_Delete_OK(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/packages/PKG-012", nil)
	req = withRouteParam(req, "id", "PKG-012")
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		deleteFn: func(ctx context.Context, id int64) (*domain.Package, error) {
			require.EqualValues(t, 12, id)
			p := samplePackage()
			return &p, nil
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Delete(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":"Deleted"`)
}

func TestPackageHandler_Delete_NotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/packages/PKG-099", nil)
	req = withRouteParam(req, "id", "PKG-099")
	rr := httptest.NewRecorder()

	uc := &stubPackageUsecase{
		deleteFn: func(ctx context.Context, id int64) (*domain.Package, error) {
			return nil, apperr.ErrNotFound
		},
	}
	h := handlers.NewPackageHandler(testLogger(), uc)
	h.Delete(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
}
