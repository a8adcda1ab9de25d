package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/tripbudget/backend/internal/budget"
	"github.com/tripbudget/backend/internal/currency"
	"github.com/tripbudget/backend/internal/httputil"
	"github.com/tripbudget/backend/internal/rates"
)

// RegisterCurrencyRoutes registers the public routes for currencies,
// exchange rates and expense categories.
func (co Controller) RegisterCurrencyRoutes(r *gin.RouterGroup) {
	r.OPTIONS("/currencies", OptionsGetOnly)
	r.GET("/currencies", GetCurrencies)

	r.OPTIONS("/rates/:base", OptionsGetOnly)
	r.GET("/rates/:base", co.GetRates)

	r.OPTIONS("/convert", OptionsGetOnly)
	r.GET("/convert", co.Convert)

	r.OPTIONS("/categories", OptionsGetOnly)
	r.GET("/categories", GetCategories)
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Currencies
// @Success		204
// @Router			/v1/currencies [options]
// @Router			/v1/convert [options]
// @Router			/v1/categories [options]
func OptionsGetOnly(c *gin.Context) {
	httputil.Options(c, http.MethodGet)
}

type CurrencyListResponse struct {
	Data []currency.Currency `json:"data"` // List of supported currencies
}

type RatesResponse struct {
	Data  *rates.Table `json:"data"`                                            // Exchange rate table
	Error *string      `json:"error" example:"XYZ is not a supported currency"` // The error, if any occurred
}

type ConversionQuery struct {
	Amount string `form:"amount" example:"25.50"` // Amount to convert
	From   string `form:"from" example:"EUR"`     // Currency of the amount
	To     string `form:"to" example:"USD"`       // Currency to convert to
}

type Conversion struct {
	Amount    decimal.Decimal `json:"amount" example:"25.5"`      // Amount that was converted
	From      string          `json:"from" example:"EUR"`         // Currency of the amount
	To        string          `json:"to" example:"USD"`           // Currency the amount was converted to
	Result    decimal.Decimal `json:"result" example:"27.72"`     // Converted amount
	Formatted string          `json:"formatted" example:"$27.72"` // Converted amount for display
	Fallback  bool            `json:"fallback" example:"false"`   // True if the built-in rates were used
	Converted bool            `json:"converted" example:"true"`   // False if no rate was known and the amount is returned unchanged
}

type ConversionResponse struct {
	Data  *Conversion `json:"data"`                                                          // The conversion
	Error *string     `json:"error" example:"the amount parameter must be a decimal number"` // The error, if any occurred
}

type CategoryListResponse struct {
	Data []budget.Category `json:"data"` // List of predefined categories
}

// @Summary		Get currencies
// @Description	Returns the currencies that can be used for trips and expenses
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CurrencyListResponse
// @Router			/v1/currencies [get]
func GetCurrencies(c *gin.Context) {
	c.JSON(http.StatusOK, CurrencyListResponse{
		Data: currency.Supported,
	})
}

// @Summary		Get exchange rates
// @Description	Returns the exchange rate table anchored at the base currency. When the provider cannot be reached, built-in rates are returned.
// @Tags			Currencies
// @Produce		json
// @Success		200		{object}	RatesResponse
// @Failure		400		{object}	RatesResponse
// @Param			base	path		string	true	"Base currency"
// @Router			/v1/rates/{base} [get]
func (co Controller) GetRates(c *gin.Context) {
	base := currency.Normalize(c.Param("base"))
	err := currency.Validate(base)
	if err != nil {
		s := err.Error()
		c.JSON(http.StatusBadRequest, RatesResponse{
			Error: &s,
		})
		return
	}

	table := co.Rates.Get(c.Request.Context(), base)
	c.JSON(http.StatusOK, RatesResponse{Data: &table})
}

// @Summary		Convert an amount
// @Description	Converts an amount between two currencies with the exchange rate table anchored at the target currency
// @Tags			Currencies
// @Produce		json
// @Success		200		{object}	ConversionResponse
// @Failure		400		{object}	ConversionResponse
// @Param			amount	query		string	true	"Amount to convert"
// @Param			from	query		string	true	"Currency of the amount"
// @Param			to		query		string	true	"Currency to convert to"
// @Router			/v1/convert [get]
func (co Controller) Convert(c *gin.Context) {
	var query ConversionQuery
	err := c.ShouldBindQuery(&query)
	if err != nil {
		s := httputil.ErrInvalidQueryString.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{
			Error: &s,
		})
		return
	}

	from := currency.Normalize(query.From)
	to := currency.Normalize(query.To)

	if strings.TrimSpace(query.Amount) == "" || from == "" || to == "" {
		s := errConvertParameters.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{
			Error: &s,
		})
		return
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(query.Amount))
	if err != nil {
		s := errAmountInvalid.Error()
		c.JSON(http.StatusBadRequest, ConversionResponse{
			Error: &s,
		})
		return
	}

	for _, code := range []string{from, to} {
		if err := currency.Validate(code); err != nil {
			s := err.Error()
			c.JSON(http.StatusBadRequest, ConversionResponse{
				Error: &s,
			})
			return
		}
	}

	table := co.Rates.Get(c.Request.Context(), to)
	result, err := currency.ConvertChecked(amount, from, to, table.Rates)

	c.JSON(http.StatusOK, ConversionResponse{
		Data: &Conversion{
			Amount:    amount,
			From:      from,
			To:        to,
			Result:    result,
			Formatted: currency.Format(result, to),
			Fallback:  table.Fallback,
			Converted: err == nil,
		},
	})
}

// @Summary		Get categories
// @Description	Returns the predefined expense categories with their labels
// @Tags			Currencies
// @Produce		json
// @Success		200	{object}	CategoryListResponse
// @Router			/v1/categories [get]
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, CategoryListResponse{
		Data: budget.Predefined,
	})
}
