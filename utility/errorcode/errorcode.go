package errorcode

const (
	INPUT_ERR_CODE        = "INPUT_ERR"
	SERVER_ERR_CODE       = "SYSTEM_ERR"
	VALIDATION_ERR_CODE   = "VALIDATION_ERR"
	EXTERNAL_API_ERR_CODE = "EXTERNAL_API_ERR"
	CANCELLED_ERR_CODE    = "CANCELLED"
)

var (
	SUCCESS              = "Request Proccessed Successfully"
	INPUT_ERR            = "Invalid Input Supplied. See documentation"
	SYSTEM_ERR           = "Request Could Not Be Proccessed. Server encountered an error"
	VALIDATION_ERR       = "Validation Failed For Some Fields"
	MISSING_PARAMS_ERR   = "Missing required parameters"
	CONFIGURATION_ERR    = "Internal server configuration error"
	PROXY_ERR            = "Internal server error during API proxy"
	SINGLE_ASSET_ONLY    = "Currently only supports single asset conversion"
	QUOTE_FETCH_ERR      = "Failed to fetch quote"
	SCAN_ERR             = "Failed to fetch or process token balances. Please try again."
	MISSING_CREDENTIAL   = "aggregation API credential is not configured"
	EMPTY_WALLET_ADDRESS = "wallet address is required"
)
