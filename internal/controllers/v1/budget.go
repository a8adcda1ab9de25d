package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/models"
)

// @Summary		Get budget
// @Description	Returns the budget figures of a trip. All amounts are converted into the base currency of the trip.
// @Tags			Trips
// @Produce		json
// @Success		200	{object}	BudgetResponse
// @Failure		400	{object}	BudgetResponse
// @Failure		404	{object}	BudgetResponse
// @Failure		500	{object}	BudgetResponse
// @Param			id	path		URIID	true	"ignored, but needed: https://github.com/swaggo/swag/issues/1014"
// @Param			top	query		int		false	"Only return the categories with the highest spending"
// @Router			/v1/trips/{id}/budget [get]
func (co Controller) GetTripBudget(c *gin.Context) {
	access, err := accessTrip(c)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	var query BudgetQuery
	err = c.ShouldBindQuery(&query)
	if err != nil || query.Top < 0 {
		s := errTopInvalid.Error()
		c.JSON(http.StatusBadRequest, BudgetResponse{
			Error: &s,
		})
		return
	}

	trip := access.Trip

	expenses, err := trip.Expenses(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	contributors, err := trip.Contributors(models.DB)
	if err != nil {
		s := err.Error()
		c.JSON(status(err), BudgetResponse{
			Error: &s,
		})
		return
	}

	contributed := decimal.Zero
	for _, contributor := range contributors {
		contributed = contributed.Add(contributor.Amount)
	}

	table := co.Rates.Get(c.Request.Context(), trip.BaseCurrency)
	entries := models.Entries(expenses)
	snapshot := budget.Aggregate(entries, trip.AllocatedBudget, table.Rates, trip.BaseCurrency)


	c.JSON(http.StatusOK, BudgetResponse{
		Data: &Budget{
			Snapshot:    snapshot,
			Contributed: contributed,
			Categories:  budget.Top(budget.Categories(entries, table.Rates, trip.BaseCurrency), query.Top),
			Breakdown:   budget.Breakdown(entries, table.Rates, trip.BaseCurrency),
			Alerts:      budget.Alerts(snapshot, trip.AllocatedBudget, trip.BaseCurrency),
			Status:      trip.Status(co.now()),
			Rates: RateInfo{
				Base:      table.Base,
				UpdatedAt: table.UpdatedAt,
				Fallback:  table.Fallback,
			},
		},
	})
}
