package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/models"
	"gorm.io/gorm"
)

// FriendRequest is the body to send a friend request or to block a user.
type FriendRequest struct {
	UserID uuid.UUID `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"` // ID of the other user
}

type FriendshipLinks struct {
	Self   string `json:"self" example:"https://example.com/api/v1/friendships/5d1c3b2a-1e0f-4a9b-8c7d-6e5f4a3b2c1d"`          // The friendship itself
	Accept string `json:"accept" example:"https://example.com/api/v1/friendships/5d1c3b2a-1e0f-4a9b-8c7d-6e5f4a3b2c1d/accept"` // Endpoint to accept the friend request
}

// Friendship is the API v1 representation of a Friendship.
type Friendship struct {
	models.DefaultModel
	UserID   uuid.UUID               `json:"userId" example:"0b6f0b34-1b3f-4a5a-8c43-8f2b9d0a4a11"`   // User that sent the request or blocked the other user
	FriendID uuid.UUID               `json:"friendId" example:"9a8b7c6d-5e4f-4a3b-2c1d-0e9f8a7b6c5d"` // The other user
	Status   models.FriendshipStatus `json:"status" example:"pending"`                                // One of pending, accepted, blocked
	Links    FriendshipLinks         `json:"links"`
}

func newFriendship(c *gin.Context, model models.Friendship) Friendship {
	url := c.GetString(string(models.DBContextURL))
	self := fmt.Sprintf("%s/v1/friendships/%s", url, model.ID)

	return Friendship{
		DefaultModel: model.DefaultModel,
		UserID:       model.UserID,
		FriendID:     model.FriendID,
		Status:       model.Status,
		Links: FriendshipLinks{
			Self:   self,
			Accept: self + "/accept",
		},
	}
}

// Friend is a user with a friendship relation to the authenticated user.
type Friend struct {
	FriendshipID uuid.UUID `json:"friendshipId" example:"5d1c3b2a-1e0f-4a9b-8c7d-6e5f4a3b2c1d"` // ID of the friendship
	User         User      `json:"user"`                                                        // The other user
	Since        time.Time `json:"since" example:"2024-03-01T12:00:00Z"`                        // Time of the last change of the friendship
}

type FriendListResponse struct {
	Data  []Friend `json:"data"`                                                          // List of friends
	Error *string  `json:"error" example:"the specified resource ID is not a valid UUID"` // The error, if any occurred
}

type FriendshipResponse struct {
	Data  *Friendship `json:"data"`                                                    // Data for the friendship
	Error *string     `json:"error" example:"friendship already exists or is pending"` // The error, if any occurred
}

// RegisterFriendshipRoutes registers the routes for friendships with
// the RouterGroup that is passed.
func RegisterFriendshipRoutes(r *gin.RouterGroup) {
	// Root group
	{
		r.OPTIONS("", OptionsFriendshipList)
		r.GET("", GetFriends)
		r.POST("", SendFriendRequest)
	}

	// Pending requests
	{
		r.OPTIONS("/incoming", OptionsFriendRequests)
		r.GET("/incoming", GetIncomingFriendRequests)
		r.OPTIONS("/sent", OptionsFriendRequests)
		r.GET("/sent", GetSentFriendRequests)
	}

	{
		r.OPTIONS("/block", OptionsFriendshipAction)
		r.POST("/block", BlockUser)
	}

	// Friendship with ID
	{
		r.OPTIONS("/:id", OptionsFriendshipDetail)
		r.DELETE("/:id", RejectFriendRequest)
		r.OPTIONS("/:id/accept", OptionsFriendshipAction)
		r.POST("/:id/accept", AcceptFriendRequest)
	}
}

// RegisterFriendRoutes registers the routes for friends with
// the RouterGroup that is passed.
func RegisterFriendRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/:id", OptionsFriendshipDetail)
	r.DELETE("/:id", RemoveFriend)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Friendships
// @Success		204
// @Router			/v1/friendships [options]
func OptionsFriendshipList(c *gin.Context) {
	httputil.Options(c, http.MethodGet, http.MethodPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Friendships
// @Success		204
// @Router			/v1/friendships/incoming [options]
// @Router			/v1/friendships/sent [options]
func OptionsFriendRequests(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Friendships
// @Success		204
// @Router			/v1/friendships/block [options]
// @Router			/v1/friendships/{id}/accept [options]
func OptionsFriendshipAction(c *gin.Context) {
	httputil.Options(c, http.MethodPost)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Friendships
// @Success		204
// @Router			/v1/friendships/{id} [options]
// @Router			/v1/friends/{id} [options]
func OptionsFriendshipDetail(c *gin.Context) {
	httputil.Options(c, http.MethodDelete)
}

// friendList renders the users of a friendship listing.
func friendList(c *gin.Context, list func(db *gorm.DB, userID uuid.UUID) ([]models.Friend, error)) {
	friends, err := list(models.DB, currentUser(c).ID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendListResponse{
			Error: &s,
		})
		return
	}

	data := make([]Friend, 0, len(friends))
	for _, friend := range friends {
		data = append(data, Friend{
			FriendshipID: friend.FriendshipID,
			User:         newUser(friend.User),
			Since:        friend.Since,
		})
	}

	c.JSON(http.StatusOK, FriendListResponse{Data: data})
}

// @Summary		Get friends
// @Description	Returns all users with an accepted friendship with the authenticated user
// @Tags			Friendships
// @Produce		json
// @Success		200	{object}	FriendListResponse
// @Failure		500	{object}	FriendListResponse
// @Router			/v1/friendships [get]
func GetFriends(c *gin.Context) {
	friendList(c, models.Friends)
}

// @Summary		Get incoming friend requests
// @Description	Returns the pending friend requests sent to the authenticated user
// @Tags			Friendships
// @Produce		json
// @Success		200	{object}	FriendListResponse
// @Failure		500	{object}	FriendListResponse
// @Router			/v1/friendships/incoming [get]
func GetIncomingFriendRequests(c *gin.Context) {
	friendList(c, models.IncomingRequests)
}

// @Summary		Get sent friend requests
// @Description	Returns the pending friend requests the authenticated user sent
// @Tags			Friendships
// @Produce		json
// @Success		200	{object}	FriendListResponse
// @Failure		500	{object}	FriendListResponse
// @Router			/v1/friendships/sent [get]
func GetSentFriendRequests(c *gin.Context) {
	friendList(c, models.SentRequests)
}

// bindFriendRequest binds the body and checks that the user ID is set.
func bindFriendRequest(c *gin.Context) (FriendRequest, error) {
	var request FriendRequest
	err := httputil.BindData(c, &request)
	if err != nil {
		return FriendRequest{}, err
	}

	if request.UserID == uuid.Nil {
		return FriendRequest{}, errUserIDMissing
	}

	return request, nil
}

// @Summary		Send friend request
// @Description	Sends a friend request to another user
// @Tags			Friendships
// @Accept			json
// @Produce		json
// @Success		201		{object}	FriendshipResponse
// @Failure		400		{object}	FriendshipResponse
// @Failure		404		{object}	FriendshipResponse
// @Failure		500		{object}	FriendshipResponse
// @Param			request	body		FriendRequest	true	"Friend request"
// @Router			/v1/friendships [post]
func SendFriendRequest(c *gin.Context) {
	request, err := bindFriendRequest(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	friendship, err := models.SendFriendRequest(models.DB, currentUser(c).ID, request.UserID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	data := newFriendship(c, friendship)
	c.JSON(http.StatusCreated, FriendshipResponse{Data: &data})
}

// @Summary		Accept friend request
// @Description	Accepts a pending friend request. Only the recipient can accept it.
// @Tags			Friendships
// @Produce		json
// @Success		200	{object}	FriendshipResponse
// @Failure		400	{object}	FriendshipResponse
// @Failure		403	{object}	FriendshipResponse
// @Failure		404	{object}	FriendshipResponse
// @Failure		500	{object}	FriendshipResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/friendships/{id}/accept [post]
func AcceptFriendRequest(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	user := currentUser(c)
	friendship, err := models.FriendshipForUser(models.DB, uri.ID.UUID, user.ID)
	if err == nil {
		err = friendship.Accept(models.DB, user.ID)
	}

	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	data := newFriendship(c, friendship)
	c.JSON(http.StatusOK, FriendshipResponse{Data: &data})
}

// @Summary		Reject friend request
// @Description	Rejects a friend request. When called by the sender, the request is cancelled.
// @Tags			Friendships
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		403	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Router			/v1/friendships/{id} [delete]
func RejectFriendRequest(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	user := currentUser(c)
	friendship, err := models.FriendshipForUser(models.DB, uri.ID.UUID, user.ID)
	if err == nil {
		err = friendship.Reject(models.DB, user.ID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Remove friend
// @Description	Removes the friendship with another user, regardless of who sent the request
// @Tags			Friendships
// @Success		204
// @Failure		400	{object}	httpError
// @Failure		404	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			id	path		URIID	true	"ID of the friend"
// @Router			/v1/friends/{id} [delete]
func RemoveFriend(c *gin.Context) {
	var uri URIID
	err := c.ShouldBindUri(&uri)
	if err == nil {
		err = models.RemoveFriend(models.DB, currentUser(c).ID, uri.ID.UUID)
	}

	if err != nil {
		c.JSON(status(err), httpError{
			Error: err.Error(),
		})
		return
	}

	c.JSON(http.StatusNoContent, nil)
}

// @Summary		Block user
// @Description	Blocks another user. An existing friendship or request is replaced.
// @Tags			Friendships
// @Accept			json
// @Produce		json
// @Success		200		{object}	FriendshipResponse
// @Failure		400		{object}	FriendshipResponse
// @Failure		500		{object}	FriendshipResponse
// @Param			request	body		FriendRequest	true	"User to block"
// @Router			/v1/friendships/block [post]
func BlockUser(c *gin.Context) {
	request, err := bindFriendRequest(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	friendship, err := models.BlockUser(models.DB, currentUser(c).ID, request.UserID)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), FriendshipResponse{
			Error: &s,
		})
		return
	}

	data := newFriendship(c, friendship)
	c.JSON(http.StatusOK, FriendshipResponse{Data: &data})
}
