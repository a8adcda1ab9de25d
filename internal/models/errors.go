package models

import (
	"errors"
)

var (
	ErrGeneral           = errors.New("an error occurred on the server during your request")
	ErrResourceNotFound  = errors.New("there is no")
	ErrReferenceNotFound = errors.New("a resource ID you specified does not identify an existing resource")
	ErrUnauthenticated   = errors.New("the request is not authenticated, the X-User-ID header must be set")
	ErrForbidden         = errors.New("you are not allowed to perform this action")
)

// Users
var (
	ErrUserSubjectNotUnique = errors.New("a user with this subject already exists")
	ErrUserSearchTooShort   = errors.New("the search query must be at least 2 characters long")
)

// Trips
var (
	ErrTripTitleEmpty      = errors.New("the title of a trip must not be empty")
	ErrTripBudgetNegative  = errors.New("the allocated budget must not be negative")
	ErrTripDatesInvalid    = errors.New("the end date of a trip must not be before its start date")
	ErrTripCurrencyMissing = errors.New("the base currency of a trip must be set")
)

// Participants
var (
	ErrParticipantExists      = errors.New("this user is already a participant of the trip")
	ErrParticipantNotFriend   = errors.New("only accepted friends can be invited to a trip")
	ErrParticipantNotPending  = errors.New("the invitation is not pending")
	ErrParticipantOwnerRemove = errors.New("the owner of a trip cannot be removed from it")
	ErrParticipantStatus      = errors.New("the status must be one of accepted, declined")
)

// Expenses
var (
	ErrExpenseNameEmpty      = errors.New("the name of an expense must not be empty")
	ErrExpenseAmountNegative = errors.New("the amount of an expense must not be negative")
	ErrExpenseDatesInvalid   = errors.New("the end date of an expense must not be before its date")
)

// Contributors
var (
	ErrContributorNameEmpty      = errors.New("the name of a contributor must not be empty")
	ErrContributorAmountNegative = errors.New("the amount of a contributor must not be negative")
)

// Custom categories
var (
	ErrCustomCategoryNameEmpty     = errors.New("the name of a category must not be empty")
	ErrCustomCategoryNameNotUnique = errors.New("the category name must be unique for the trip")
)

// Activities
var (
	ErrActivityTitleEmpty = errors.New("the title of an activity must not be empty")
	ErrActivityDayInvalid = errors.New("the day of an activity must be 1 or later")
	ErrActivityTimeFormat = errors.New("the time of an activity must be in HH:MM format")
)

// Friendships
var (
	ErrFriendshipSelf       = errors.New("you cannot send a friend request to yourself")
	ErrFriendshipExists     = errors.New("friendship already exists or is pending")
	ErrFriendshipNotPending = errors.New("the friend request is not pending")
)

// Category rules
var (
	ErrCategoryRuleMatchEmpty    = errors.New("the match of a category rule must not be empty")
	ErrCategoryRuleCategoryEmpty = errors.New("the category of a category rule must not be empty")
)
