package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/foodbridge-inc/foodbridge-api/schema"
	"github.com/foodbridge-inc/foodbridge-api/store"
)

// accountRegister creates one profile in the collection matching the
// requested role. The identity string is supplied, not issued, here.
func (s *Server) accountRegister(c *gin.Context) {
	var params struct {
		Identity           string `json:"identity"`
		Role               string `json:"role"`
		Name               string `json:"name"`
		Phone              string `json:"phone"`
		Address            string `json:"address"`
		RegistrationNumber string `json:"registration_number"`
		ContactPerson      string `json:"contact_person"`
		Organization       string `json:"organization"`
		EmployeeID         string `json:"employee_id"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}
	if params.Identity == "" || params.Name == "" {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	var profile interface{}
	var err error

	switch params.Role {
	case schema.RoleIndividual:
		profile, err = s.store.RegisterIndividual(&schema.Individual{
			Identity: params.Identity,
			Name:     params.Name,
			Phone:    params.Phone,
			Address:  params.Address,
		})
	case schema.RoleNGO:
		profile, err = s.store.RegisterNGO(&schema.NGO{
			Identity:           params.Identity,
			Name:               params.Name,
			RegistrationNumber: params.RegistrationNumber,
			ContactPerson:      params.ContactPerson,
			Phone:              params.Phone,
			Address:            params.Address,
		})
	case schema.RoleSocialWorker:
		profile, err = s.store.RegisterSocialWorker(&schema.SocialWorker{
			Identity:     params.Identity,
			Name:         params.Name,
			Organization: params.Organization,
			EmployeeID:   params.EmployeeID,
			Phone:        params.Phone,
		})
	default:
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	if err != nil {
		if err == store.ErrIdentityTaken {
			abortWithEncoding(c, http.StatusConflict, errorIdentityTaken, err)
		} else {
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"role":    params.Role,
		"profile": profile,
	})
}

// accountMe resolves the caller's identity to its profile and role tag.
func (s *Server) accountMe(c *gin.Context) {
	actor := s.resolveActor(c, c.Query("actor"))
	if actor == nil {
		return
	}

	c.JSON(http.StatusOK, actor)
}
