package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClientWith(server.URL+"/api", server.Client(), discardLogger())
}

func Test_Client_ListRequests_WrappedShape(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/requests", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"requests":[
			{"id":1,"referenceNumber":"REQ-AAAA1111","documentType":"releve_notes","status":"pending","createdAt":"2026-01-10T09:00:00Z"},
			{"id":0,"referenceNumber":"REQ-GONE","documentType":"releve_notes"}
		],"total":2,"page":1,"limit":20,"total_pages":1}`))
	}))

	requests, err := client.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, "REQ-AAAA1111", requests[0].ReferenceNumber)
}

func Test_Client_ListRequests_BareArray(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id":5,"referenceNumber":"REQ-BARE0001","documentType":"attestation_scolarite","createdAt":"2026-02-01"}]`))
	}))

	requests, err := client.ListRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, requests, 1)
	assert.Equal(t, uint(5), requests[0].ID)
	assert.Equal(t, "pending", requests[0].Status)
}

func Test_Client_CreateRequest(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/requests", r.URL.Path)

		var body CreateRequestInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, uint(12), body.StudentID)
		assert.Equal(t, "releve_notes", body.DocumentType)

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"ok":true,"id":42,"referenceNumber":"REQ-1234ABCD"}`))
	}))

	result, err := client.CreateRequest(context.Background(), CreateRequestInput{
		StudentID:    12,
		DocumentType: "releve_notes",
		AcademicYear: "2025-2026",
		Semester:     "S3",
	})
	require.NoError(t, err)
	assert.Equal(t, uint(42), result.ID)
	assert.Equal(t, "REQ-1234ABCD", result.ReferenceNumber)
}

func Test_Client_UpdateRequestStatus_CallShape(t *testing.T) {
	var got map[string]interface{}
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/requests/7/status", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Write([]byte(`{"ok":true}`))
	}))

	err := client.UpdateRequestStatus(context.Background(), 7, StatusUpdate{
		Status:          "rejected",
		AdminID:         3,
		RejectionReason: "Dossier incomplet",
	})
	require.NoError(t, err)
	assert.Equal(t, "rejected", got["status"])
	assert.Equal(t, "Dossier incomplet", got["rejectionReason"])
}

func Test_Client_ServerErrorMessageSurfaced(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":"request already processed"}`))
	}))

	err := client.UpdateRequestStatus(context.Background(), 1, StatusUpdate{Status: "accepted"})
	require.Error(t, err)
	assert.Equal(t, "request already processed", err.Error())
}

func Test_Client_GenericErrorWhenBodyOpaque(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`<html>upstream down</html>`))
	}))

	_, err := client.ListRequests(context.Background())
	require.Error(t, err)
	assert.Equal(t, "API error (502)", err.Error())
}

func Test_Client_ValidateStudent(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/students/validate", r.URL.Path)

		var identity Identity
		require.NoError(t, json.NewDecoder(r.Body).Decode(&identity))
		if identity.Apogee == "20250001" {
			w.Write([]byte(`{"valid":true,"student":{"id":1,"email":"amina.elfassi@univ.ma","apogee":"20250001","cin":"AB123456","firstName":"Amina","lastName":"El Fassi"}}`))
			return
		}
		w.Write([]byte(`{"valid":false,"student":null}`))
	}))

	student, valid, err := client.ValidateStudent(context.Background(), Identity{
		Email: "amina.elfassi@univ.ma", Apogee: "20250001", CIN: "AB123456",
	})
	require.NoError(t, err)
	assert.True(t, valid)
	require.NotNil(t, student)
	assert.Equal(t, "Amina El Fassi", student.FullName())

	student, valid, err = client.ValidateStudent(context.Background(), Identity{
		Email: "nobody@univ.ma", Apogee: "99999999", CIN: "ZZ000000",
	})
	require.NoError(t, err)
	assert.False(t, valid)
	assert.Nil(t, student)
}

func Test_Client_LookupFallbacks(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))

	years := client.AcademicYears(context.Background())
	assert.NotEmpty(t, years)
	assert.Equal(t, fallbackAcademicYears, years)

	semesters := client.Semesters(context.Background())
	assert.Equal(t, fallbackSemesters, semesters)
}

func Test_Client_DownloadDocument_OpaqueBytes(t *testing.T) {
	payload := []byte("UNIVERSITE ...\nRELEVE DE NOTES\n")
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/requests/9/download", r.URL.Path)
		w.Header().Set("Content-Disposition", `attachment; filename="releve_notes_REQ-1.txt"`)
		w.Write(payload)
	}))

	data, err := client.DownloadDocument(context.Background(), 9)
	require.NoError(t, err)
	assert.Equal(t, payload, data)
}

func Test_Client_Login(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/login", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "admin", body["identifier"])

		w.Write([]byte(`{"success":true,"message":"Login successful","data":{
			"admin":{"id":1,"email":"admin@studesk.local","username":"admin","displayName":"Service Scolarité"},
			"access_token":"eyJ.test.token"
		}}`))
	}))

	admin, err := client.Login(context.Background(), "admin", "admin123456")
	require.NoError(t, err)
	assert.Equal(t, uint(1), admin.ID)
	assert.Equal(t, "admin", admin.Username)
	assert.Equal(t, "Service Scolarité", admin.DisplayName)
}

func Test_Client_Login_InvalidCredentials(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"Invalid credentials"}`))
	}))

	_, err := client.Login(context.Background(), "admin", "wrong")
	require.Error(t, err)
	assert.Equal(t, "Invalid credentials", err.Error())
}

func Test_Client_GetComplaint_Detail(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/complaints/4", r.URL.Path)
		w.Write([]byte(`{
			"complaint":{
				"id":4,"referenceNumber":"REC-ABCD1234","email":"amina.elfassi@univ.ma","apogee":"20250001","cin":"AB123456",
				"subject":"Retard de traitement","description":"...","status":"pending","createdAt":"2026-03-01T12:00:00Z",
				"relatedRequestNumber":"REQ-1234ABCD"
			},
			"student":{"id":1,"firstName":"Amina","lastName":"El Fassi"},
			"relatedRequest":{"id":42,"referenceNumber":"REQ-1234ABCD","documentType":"releve_notes","status":"pending"}
		}`))
	}))

	detail, err := client.GetComplaint(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "REC-ABCD1234", detail.ReferenceNumber)
	require.NotNil(t, detail.RelatedRequest)
	assert.Equal(t, "releve_notes", detail.RelatedRequest.DocumentType)
	require.NotNil(t, detail.Student)
	assert.Equal(t, "Amina", detail.Student.FirstName)
}
