package controller

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iqbal-fadhil/thesis-try-out-app/internal/authclient"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/middleware"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/model"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/repository"
	"github.com/iqbal-fadhil/thesis-try-out-app/internal/service"
)

func newProfileRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	db := newTestDB(t, &model.Profile{})
	c := NewProfileController(service.NewProfileService(repository.NewProfileRepository(db)))

	resolver := &fakeResolver{identities: map[string]*authclient.Identity{
		"alice-token": {Username: "alice", Email: "alice@example.com"},
		"bob-token":   {Username: "bob", Email: "bob@example.com"},
		"staff-token": {Username: "admin", Email: "admin@example.com", IsStaff: true},
	}}

	router := gin.New()
	api := router.Group("/api")
	api.GET("/users", middleware.Identity(resolver), middleware.StaffOnly(), c.List)
	api.GET("/users/:username", c.Get)
	api.POST("/users/:username/score", middleware.Identity(resolver), c.AdjustScore)
	return router, db
}

func TestAdjustScoreHTTP(t *testing.T) {
	router, _ := newProfileRouter(t)

	w := doJSON(t, router, "POST", "/api/users/alice/score", "alice-token",
		ScoreUpdateRequest{ScoreIncrement: 5})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, float64(5), body["score"])
	assert.Equal(t, float64(5), body["increment"])

	w = doJSON(t, router, "POST", "/api/users/alice/score", "alice-token",
		ScoreUpdateRequest{ScoreIncrement: 3})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, float64(8), decodeBody(t, w)["score"])
}

func TestAdjustScoreNotSelf(t *testing.T) {
	router, db := newProfileRouter(t)

	w := doJSON(t, router, "POST", "/api/users/alice/score", "alice-token",
		ScoreUpdateRequest{ScoreIncrement: 5})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, "POST", "/api/users/alice/score", "bob-token",
		ScoreUpdateRequest{ScoreIncrement: 100})
	assert.Equal(t, http.StatusForbidden, w.Code)

	// staff does not override the self-only rule either
	w = doJSON(t, router, "POST", "/api/users/alice/score", "staff-token",
		ScoreUpdateRequest{ScoreIncrement: 100})
	assert.Equal(t, http.StatusForbidden, w.Code)

	var p model.Profile
	require.NoError(t, db.Where("username = ?", "alice").First(&p).Error)
	assert.Equal(t, 5, p.Score)
	assert.Equal(t, 1, p.TestsAttempted)
}

func TestAdjustScoreZeroIncrement(t *testing.T) {
	router, _ := newProfileRouter(t)

	w := doJSON(t, router, "POST", "/api/users/alice/score", "alice-token",
		ScoreUpdateRequest{ScoreIncrement: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdjustScoreNoToken(t *testing.T) {
	router, _ := newProfileRouter(t)

	w := doJSON(t, router, "POST", "/api/users/alice/score", "",
		ScoreUpdateRequest{ScoreIncrement: 5})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetProfileHTTP(t *testing.T) {
	router, db := newProfileRouter(t)
	require.NoError(t, db.Create(&model.Profile{
		Username: "alice",
		Email:    "alice@example.com",
		Score:    7,
	}).Error)

	w := doJSON(t, router, "GET", "/api/users/alice", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "alice", body["username"])
	assert.Equal(t, float64(7), body["score"])

	w = doJSON(t, router, "GET", "/api/users/nobody", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListProfilesStaffOnly(t *testing.T) {
	router, db := newProfileRouter(t)
	require.NoError(t, db.Create(&model.Profile{Username: "alice"}).Error)
	require.NoError(t, db.Create(&model.Profile{Username: "bob"}).Error)

	w := doJSON(t, router, "GET", "/api/users", "alice-token", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doJSON(t, router, "GET", "/api/users", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(t, router, "GET", "/api/users", "staff-token", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var profiles []model.Profile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &profiles))
	require.Len(t, profiles, 2)
	assert.Equal(t, "alice", profiles[0].Username)
	assert.Equal(t, "bob", profiles[1].Username)
}
