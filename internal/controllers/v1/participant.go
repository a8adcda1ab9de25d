package v1

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
)

// ParticipantInvite is the body to invite a user to a trip.
type ParticipantInvite struct {
	UserID uuid.UUID `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the user to invite. Must be an accepted friend
}

// ParticipantEditable is the body to respond to an invitation.
type ParticipantEditable struct {
	Status models.ParticipantStatus `json:"status" example:"accepted"` // One of accepted, declined
}

type ParticipantLinks struct {
	Self string `json:"self" example:"https://example.com/api/v1/participants/7c1d9a2e-3f4b-4c5d-8e6f-7a8b9c0d1e2f"` // The participant itself
	Trip string `json:"trip" example:"https://example.com/api/v1/trips/4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"`        // The trip
}

// Participant is the API v1 representation of a Participant.
type Participant struct {
	models.DefaultModel
	TripID    uuid.UUID                `json:"tripId" example:"4ab2b2e5-6a1d-4b1e-b1f0-46e4f3c37a3d"`  // ID of the trip
	UserID    uuid.UUID                `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"`  // ID of the user
	Role      models.Role              `json:"role" example:"member"`                                  // One of owner, member
	Status    models.ParticipantStatus `json:"status" example:"accepted"`                              // One of pending, accepted, declined
	Name      string                   `json:"name,omitempty" example:"Kenji Sato"`                    // Name of the user
	Email     string                   `json:"email,omitempty" example:"kenji@example.com"`            // Email of the user
	ImageURL  string                   `json:"imageUrl,omitempty" example:"https://example.com/k.png"` // Profile picture of the user
	TripTitle string                   `json:"tripTitle,omitempty" example:"Trip to Japan"`            // Title of the trip. Only set for invitations
	Links     ParticipantLinks         `json:"links"`
}

func newParticipant(c *gin.Context, model models.Participant) Participant {
	url := c.GetString(string(models.DBContextURL))

	return Participant{
		DefaultModel: model.DefaultModel,
		TripID:       model.TripID,
		UserID:       model.UserID,
		Role:         model.Role,
		Status:       model.Status,
		Links: ParticipantLinks{
			Self: fmt.Sprintf("%s/v1/participants/%s", url, model.ID),
			Trip: fmt.Sprintf("%s/v1/trips/%s", url, model.TripID),
		},
	}
}

type ParticipantListResponse struct {
	Data  []Participant `json:"data"`                                                          // List of participants
	Error *string       `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type ParticipantResponse struct {
	Data  *Participant `json:"data"`                                                           // Data for the participant
	Error *string      `json:"error" example:"only accepted friends can be invited to a trip"` // The error, if any occurred
}

// RegisterParticipantRoutes registers the routes for participants with
// the RouterGroup that is passed.
func RegisterParticipantRoutes(r *gin.RouterGroup) {
	{
		r.OPTIONS("", OptionsInvitations)
		r.GET("", GetInvitations)
	}

	{
		r.OPTIONS("/:id", OptionsParticipantDetail)
		r.PATCH("/:id", RespondToInvitation)
		r.DELETE("/:id", DeleteParticipant)
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Participants
// @Success		204
// @Router			/v1/participants [options]
func OptionsInvitations(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Participants
// @Success		204
// @Router			/v1/participants/{id} [options]
func OptionsParticipantDetail(c *gin.Context) {
	httputil.Options(c, http.MethodPatch, http.MethodDelete)
}

// @Summary		Get participants
// @Description	Returns the participants of a trip with their profiles
// @Tags			Participants
// @Produce		json
// @Success		200	{object}	ParticipantListResponse
// @Failure		400	{object}	ParticipantListResponse
// @Failure		404	{object}	ParticipantListResponse
// @Failure		500	{object}	ParticipantListResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/trips/{id}/participants [get]
func GetParticipants(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantListResponse{
			Error: &s,
		})
		return
	}

	participants, err := access.Trip.Participants(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Participant, 0, len(participants))
	for _, p := range participants {
		participant := newParticipant(c, p.Participant)
		participant.Name = p.Name
		participant.Email = p.Email
		participant.ImageURL = p.ImageURL
		data = append(data, participant)
	}

	c.JSON(http.StatusOK, ParticipantListResponse{Data: data})
}

// @Summary		Invite participant
// @Description	Invites a friend to a trip. Only the owner of the trip can invite participants.
// @Tags			Participants
// @Accept			json
// @Produce		json
// @Success		201		{object}	ParticipantResponse
// @Failure		400		{object}	ParticipantResponse
// @Failure		403		{object}	ParticipantResponse
// @Failure		404		{object}	ParticipantResponse
// @Failure		500		{object}	ParticipantResponse
// @Param			id		path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			invite	body		ParticipantInvite	true	"Invitation"
// @Router			/v1/trips/{id}/participants [post]
func InviteParticipant(c *gin.Context) {
	access, err := accessTrip(c)
	if err == nil {
		err = access.RequireOwner()
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	var invite ParticipantInvite
	err = httputil.BindData(c, &invite)
	if err == nil && invite.UserID == uuid.Nil {
		err = errUserIDMissing
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	participant, err := access.Trip.Invite(models.DB, access.UserID, invite.UserID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	data := newParticipant(c, participant)
	c.JSON(http.StatusCreated, ParticipantResponse{Data: &data})
}

// @Summary		Get invitations
// @Description	Returns the pending invitations of the authenticated user
// @Tags			Participants
// @Produce		json
// @Success		200	{object}	ParticipantListResponse
// @Failure		500	{object}	ParticipantListResponse
// @Router			/v1/participants [get]
func GetInvitations(c *gin.Context) {
	invitations, err := models.Invitations(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Participant, 0, len(invitations))
	for _, invitation := range invitations {
		participant := newParticipant(c, invitation.Participant)
		participant.TripTitle = invitation.TripTitle
		data = append(data, participant)
	}

	c.JSON(http.StatusOK, ParticipantListResponse{Data: data})
}

// @Summary		Respond to invitation
// @Description	Accepts or declines an invitation. Only the invited user can respond.
// @Tags			Participants
// @Accept			json
// @Produce		json
// @Success		200			{object}	ParticipantResponse
// @Failure		400			{object}	ParticipantResponse
// @Failure		403			{object}	ParticipantResponse
// @Failure		404			{object}	ParticipantResponse
// @Failure		500			{object}	ParticipantResponse
// @Param			id			path		URIID				true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			response	body		ParticipantEditable	true	"Response"
// @Router			/v1/participants/{id} [patch]
func RespondToInvitation(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	var participant models.Participant
	err = models.DB.First(&participant, uri.ID.UUID).Error
	if err == nil && participant.UserID != currentUser(c).ID {
		err = models.ErrForbidden
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	var data ParticipantEditable
	err = httputil.BindData(c, &data)
	if err == nil {
		err = participant.Respond(models.DB, data.Status)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), ParticipantResponse{
			Error: &s,
		})
		return
	}

	r := newParticipant(c, participant)
	c.JSON(http.StatusOK, ParticipantResponse{Data: &r})
}

// @Summary		Remove participant
// @Description	Removes a participant from a trip. The owner can remove any participant, other users can only remove themselves. The owner cannot be removed.
// @Tags			Participants
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/participants/{id} [delete]
func DeleteParticipant(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	var participant models.Participant
	err = models.DB.First(&participant, uri.ID.UUID).Error
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	// Everyone can leave a trip, removing others is reserved to the owner
	user := currentUser(c)
	if participant.UserID != user.ID {
		access, err := models.AccessTrip(models.DB, participant.TripID, user.ID)
		if err == nil {
			err = access.RequireOwner()
		}

		if err != nil {
			c.JSON(status(err), httpError{
				Error: err.Error(),
			})
			return
		}
	}

	err = participant.Remove(models.DB)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}
