package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/icid-go/icid"
	"github.com/icid-go/icid/bearer"
	"github.com/icid-go/icid/models"
	"github.com/icid-go/icid/protocol"
	"github.com/icid-go/icid/store"
)

// HandleAuthorizeGin handles GET /icid/v1/authorize. The query string must
// decode to an authentication request; anything else is an invalid request.
// On success the delegation response is sent back to the relying party as a
// 302 redirect carrying OAuth2 access-token-response parameters.
func (s *Server) HandleAuthorizeGin(c *gin.Context) {
	msg, err := protocol.DecodeQuery(c.Request.URL.Query())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "invalid_request",
			"error_description": err.Error(),
		})
		return
	}
	req, ok := msg.(*models.AuthenticationRequest)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "invalid_request",
			"error_description": "query string is not an authentication request",
		})
		return
	}

	targets, err := s.Scopes.Decode(req.Scope)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":             "invalid_scope",
			"error_description": err.Error(),
		})
		return
	}

	pending := &models.PendingAuthentication{
		RequestID: uuid.NewString(),
	}
	pending.FromAuthenticationRequest(req)
	if err := s.Requests.Save(c.Request.Context(), pending); err != nil {
		logf("authorize: failed to save pending request: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "server_error",
			"error_description": "failed to persist authentication request",
		})
		return
	}

	principals := make([]icid.Principal, 0, len(targets.Canisters))
	for _, t := range targets.Canisters {
		principals = append(principals, t.Principal)
	}

	chain, err := s.Issuer.Issue(c.Request.Context(), req.SessionIdentity.Hex, principals)
	if err != nil {
		logf("authorize: delegation issuance failed for request %s: %v", pending.RequestID, err)
		c.JSON(http.StatusForbidden, gin.H{
			"error":             "access_denied",
			"error_description": "delegation issuance failed",
		})
		return
	}

	token, err := bearer.Encode(chain)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "server_error",
			"error_description": err.Error(),
		})
		return
	}

	resp := &models.AuthenticationResponse{
		AccessToken: token,
		TokenType:   icid.TokenTypeBearer,
		ExpiresIn:   s.Config.ExpiresIn,
		State:       req.State,
		Scope:       req.Scope,
	}
	location, err := protocol.BuildResponseRedirectURL(resp, req.RedirectURI)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "server_error",
			"error_description": err.Error(),
		})
		return
	}

	// The request is no longer pending once the response is on its way.
	_ = s.Requests.Delete(c.Request.Context(), pending.RequestID)

	c.Redirect(http.StatusFound, location.String())
}

// HandleGetPendingGin handles GET /icid/v1/requests/:id for operational
// inspection of in-flight requests.
func (s *Server) HandleGetPendingGin(c *gin.Context) {
	id := c.Param("id")
	pending, err := s.Requests.Load(c.Request.Context(), id)
	if err != nil {
		if err == store.ErrPendingNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"error":             "not_found",
				"error_description": "no pending authentication with that id",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":             "server_error",
			"error_description": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, pending)
}
