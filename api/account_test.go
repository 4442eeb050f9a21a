package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

func TestAccountRegisterNGO(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	m.store.EXPECT().RegisterNGO(gomock.Any()).DoAndReturn(func(p *schema.NGO) (*schema.NGO, error) {
		assert.Equal(t, "ngo-1", p.Identity)
		assert.Equal(t, "Food Rescue", p.Name)
		return p, nil
	}).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	body := `{"identity":"ngo-1","role":"ngo","name":"Food Rescue","registration_number":"A-123"}`
	req := httptest.NewRequest("POST", "/", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code, "wrong status code")

	var jResp struct {
		Role string `json:"role"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.RoleNGO, jResp.Role)
}

func TestAccountRegisterDuplicateIdentity(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	m.store.EXPECT().RegisterIndividual(gomock.Any()).Return(nil, store.ErrIdentityTaken).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"identity":"taken","role":"individual","name":"Alex"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var jResp ErrorResponse
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, int64(1100), jResp.Code)
}

func TestAccountRegisterUnknownRole(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, _ := newTestServer(ctl)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/", s.accountRegister)

	req := httptest.NewRequest("POST", "/", strings.NewReader(`{"identity":"x","role":"superhero","name":"X"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}

func TestAccountMe(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	s, m := newTestServer(ctl)

	m.store.EXPECT().FindActor("worker-1").Return(&schema.Actor{
		Identity: "worker-1",
		Name:     "Case Worker",
		Role:     schema.RoleSocialWorker,
	}, nil).Times(1)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/me", s.accountMe)

	req := httptest.NewRequest("GET", "/me?actor=worker-1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var jResp schema.Actor
	err := json.Unmarshal(w.Body.Bytes(), &jResp)
	assert.Nil(t, err, "wrong json unmarshal")
	assert.Equal(t, schema.RoleSocialWorker, jResp.Role)
}
