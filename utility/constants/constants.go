package constants

const (
	NATIVE_TOKEN_ADDRESS   = "0xeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeeee"
	ZERO_ADDRESS           = "0x0000000000000000000000000000000000000000"
	UNKNOWN_TOKEN_SYMBOL   = "UNKNOWN"
	UNKNOWN_TOKEN_NAME     = "Unknown Token"
	DEFAULT_TOKEN_DECIMALS = 18
	PRICE_CURRENCY         = "USD"

	CHAIN_REQUEST_DELAY    = 250 // milliseconds between successive chain balance requests
	PRICE_BATCH_DELAY      = 250 // milliseconds after each chain price batch
	METADATA_REQUEST_DELAY = 100 // milliseconds between successive metadata requests

	MINIMUM_ASSET_VALUE_USD = 1
	SERVICE_FEE_PERCENT     = 1
	MINIMUM_FEE_USD         = 0.1
	DEFAULT_SLIPPAGE        = 1
)
