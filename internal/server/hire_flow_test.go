package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gigboard/internal/config"
	"gigboard/internal/models"
	"gigboard/internal/repository"
	"gigboard/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer wires a full server against an in-memory database, with
// routes mounted exactly as in production.
func newTestServer(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Gig{}, &models.Bid{}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	userRepo := repository.NewUserRepository(db)
	gigRepo := repository.NewGigRepository(db)
	bidRepo := repository.NewBidRepository(db)

	s := &Server{
		config:   &config.Config{JWTSecret: "test_secret", Env: "test"},
		db:       db,
		userRepo: userRepo,
		gigRepo:  gigRepo,
		bidRepo:  bidRepo,
	}
	s.gigService = service.NewGigService(gigRepo)
	s.bidService = service.NewBidService(bidRepo, gigRepo)

	app := fiber.New()
	s.SetupRoutes(app)
	return app
}

// doJSON performs a request with an optional bearer token and decodes the
// response body into out (when out is non-nil).
func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any, out any) int {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func signupUser(t *testing.T, app *fiber.App, name, email string) authResponse {
	t.Helper()
	var resp authResponse
	status := doJSON(t, app, http.MethodPost, "/api/auth/signup", "", map[string]string{
		"name":     name,
		"email":    email,
		"password": "password123",
	}, &resp)
	require.Equal(t, http.StatusCreated, status)
	require.NotEmpty(t, resp.Token)
	return resp
}

func TestHireFlow(t *testing.T) {
	app := newTestServer(t)

	// Empty marketplace lists as an empty array, not null.
	var gigs []models.Gig
	status := doJSON(t, app, http.MethodGet, "/api/gigs/", "", nil, &gigs)
	require.Equal(t, http.StatusOK, status)
	assert.NotNil(t, gigs)
	assert.Empty(t, gigs)

	alice := signupUser(t, app, "Alice Client", "client@example.com")
	bob := signupUser(t, app, "Bob Freelancer", "freelancer@example.com")
	carol := signupUser(t, app, "Carol Freelancer", "carol@example.com")

	// Posting a gig requires authentication.
	status = doJSON(t, app, http.MethodPost, "/api/gigs", "", map[string]any{
		"title": "Build a React Website", "description": "Portfolio site.", "budget": 500,
	}, nil)
	require.Equal(t, http.StatusUnauthorized, status)

	var gig models.Gig
	status = doJSON(t, app, http.MethodPost, "/api/gigs", alice.Token, map[string]any{
		"title": "Build a React Website", "description": "Portfolio site.", "budget": 500,
	}, &gig)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, models.GigStatusOpen, gig.Status)
	assert.Equal(t, alice.User.ID, gig.OwnerID)
	assert.Equal(t, "Alice Client", gig.Owner.Name)

	// Both freelancers bid.
	var bobBid, carolBid models.Bid
	status = doJSON(t, app, http.MethodPost, "/api/bids/", bob.Token, map[string]any{
		"gigId": gig.ID, "price": 450, "message": "5 years of React experience.",
	}, &bobBid)
	require.Equal(t, http.StatusCreated, status)
	assert.Equal(t, models.BidStatusPending, bobBid.Status)

	status = doJSON(t, app, http.MethodPost, "/api/bids/", carol.Token, map[string]any{
		"gigId": gig.ID, "price": 400, "message": "I can start today.",
	}, &carolBid)
	require.Equal(t, http.StatusCreated, status)

	// Only the owner sees the bids.
	status = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/bids/%d", gig.ID), bob.Token, nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	var bids []models.Bid
	status = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/bids/%d", gig.ID), alice.Token, nil, &bids)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, bids, 2)
	assert.Equal(t, bobBid.ID, bids[0].ID, "oldest bid first")
	assert.Equal(t, "Bob Freelancer", bids[0].Freelancer.Name)

	// Only the owner can hire.
	status = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/bids/%d/hire", bobBid.ID), bob.Token, nil, nil)
	require.Equal(t, http.StatusForbidden, status)

	var hired models.Bid
	status = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/bids/%d/hire", bobBid.ID), alice.Token, nil, &hired)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.BidStatusHired, hired.Status)
	assert.Equal(t, "Bob Freelancer", hired.Freelancer.Name)

	// The gig is now assigned and out of the open listing.
	var after models.Gig
	status = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/gigs/%d", gig.ID), "", nil, &after)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, models.GigStatusAssigned, after.Status)

	status = doJSON(t, app, http.MethodGet, "/api/gigs/", "", nil, &gigs)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, gigs)

	// The losing bid was rejected with the same hire.
	status = doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/bids/%d", gig.ID), alice.Token, nil, &bids)
	require.Equal(t, http.StatusOK, status)
	statuses := map[uint]models.BidStatus{}
	for _, b := range bids {
		statuses[b.ID] = b.Status
	}
	assert.Equal(t, models.BidStatusHired, statuses[bobBid.ID])
	assert.Equal(t, models.BidStatusRejected, statuses[carolBid.ID])

	// Re-hiring against the assigned gig conflicts, for any of its bids.
	status = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/bids/%d/hire", carolBid.ID), alice.Token, nil, nil)
	require.Equal(t, http.StatusConflict, status)
	status = doJSON(t, app, http.MethodPatch, fmt.Sprintf("/api/bids/%d/hire", bobBid.ID), alice.Token, nil, nil)
	require.Equal(t, http.StatusConflict, status)
}

func TestGigEndpointsValidation(t *testing.T) {
	app := newTestServer(t)
	alice := signupUser(t, app, "Alice Client", "client@example.com")

	t.Run("InvalidGigID", func(t *testing.T) {
		status := doJSON(t, app, http.MethodGet, "/api/gigs/abc", "", nil, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("MissingGig", func(t *testing.T) {
		status := doJSON(t, app, http.MethodGet, "/api/gigs/999", "", nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("InvalidBudget", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/gigs", alice.Token, map[string]any{
			"title": "Build a site", "description": "a website", "budget": 0,
		}, nil)
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("BidOnMissingGig", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPost, "/api/bids/", alice.Token, map[string]any{
			"gigId": 999, "price": 100, "message": "hello",
		}, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("HireMissingBid", func(t *testing.T) {
		status := doJSON(t, app, http.MethodPatch, "/api/bids/999/hire", alice.Token, nil, nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}

func TestGigSearchOverHTTP(t *testing.T) {
	app := newTestServer(t)
	alice := signupUser(t, app, "Alice Client", "client@example.com")

	for _, title := range []string{"Build a React Website", "Logo Design for Startup"} {
		status := doJSON(t, app, http.MethodPost, "/api/gigs", alice.Token, map[string]any{
			"title": title, "description": "details", "budget": 300,
		}, nil)
		require.Equal(t, http.StatusCreated, status)
	}

	var gigs []models.Gig
	status := doJSON(t, app, http.MethodGet, "/api/gigs/?search=REACT", "", nil, &gigs)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, gigs, 1)
	assert.Equal(t, "Build a React Website", gigs[0].Title)

	status = doJSON(t, app, http.MethodGet, "/api/gigs/?search=nothing-like-this", "", nil, &gigs)
	require.Equal(t, http.StatusOK, status)
	assert.Empty(t, gigs)
}

func TestAuthViaSessionCookie(t *testing.T) {
	app := newTestServer(t)
	alice := signupUser(t, app, "Alice Client", "client@example.com")

	req := httptest.NewRequest(http.MethodGet, "/api/users/me", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookieName, Value: alice.Token})

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var user models.User
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&user))
	assert.Equal(t, "Alice Client", user.Name)
	assert.Equal(t, "client@example.com", user.Email)
}
