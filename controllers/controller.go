package controllers

import (
	"encoding/json"
	"net/http"

	Config "crypto-sweep/config"
	"crypto-sweep/services"
	"crypto-sweep/utility/logger"
	"crypto-sweep/utility/response"
	validator "crypto-sweep/utility/validator"

	validation "gopkg.in/go-playground/validator.v9"
)

//Controller : Controller struct
type Controller struct {
	Logger      *logger.Logger
	Config      Config.Data
	Validator   *validation.Validate
	Aggregation *services.AggregationService
}

// NewController ... Create a new base controller instance
func NewController(appLogger *logger.Logger, configData Config.Data, validate *validation.Validate, aggregation *services.AggregationService) *Controller {
	controller := &Controller{}
	controller.Logger = appLogger
	controller.Config = configData
	controller.Validator = validate
	controller.Aggregation = aggregation

	return controller
}

//Ping : Ping function
func (c *Controller) Ping(responseWriter http.ResponseWriter, requestReader *http.Request) {

	apiResponse := response.New()

	c.Logger.Info("Ping request successful! Server is up and listening")

	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(http.StatusOK)
	json.NewEncoder(responseWriter).Encode(apiResponse.PlainSuccess("SUCCESS", "Ping request successful! Server is up and listening"))
}

// ValidateRequest ... Runs struct validation and translates failures to
// field-message pairs
func ValidateRequest(validate *validation.Validate, requestData interface{}, appLogger *logger.Logger) []map[string]string {
	validationErrors := []map[string]string{}

	translator, err := validator.CustomizeMessages(validate)
	if err != nil {
		appLogger.Error("Error customizing validation messages : %s", err)
		return append(validationErrors, map[string]string{"error": err.Error()})
	}

	if err := validate.Struct(requestData); err != nil {
		for _, fieldError := range err.(validation.ValidationErrors) {
			validationErrors = append(validationErrors, map[string]string{
				fieldError.Field(): fieldError.Translate(translator),
			})
		}
	}
	return validationErrors
}

// ReturnError ... Logs and writes an error payload with the given status
func ReturnError(responseWriter http.ResponseWriter, action string, status int, err interface{}, responseData interface{}, appLogger *logger.Logger) {
	appLogger.Error("Outgoing response to %s request %+v : error : %+v", action, responseData, err)
	responseWriter.Header().Set("Content-Type", "application/json")
	responseWriter.WriteHeader(status)
	json.NewEncoder(responseWriter).Encode(responseData)
}
