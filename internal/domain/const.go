package domain

const (
	// Gateway constants
	DEFAULT_IPFS_GATEWAY    = "https://ipfs.io"
	DEFAULT_ARWEAVE_GATEWAY = "https://arweave.net"

	// Blockchain constants
	ETHEREUM_ZERO_ADDRESS = "0x0000000000000000000000000000000000000000"

	// Sync paging defaults
	DEFAULT_PAGE_SIZE            = 800
	DEFAULT_PAGE_BUDGET          = 2
	DEFAULT_TRANSFER_BATCH_SIZE  = 100
	DEFAULT_RESET_MARKER_VERSION = 5

	// DOWNWARD_SYNC_START_BLOCK is the "now" sentinel used as the end block of the first downward sync
	DOWNWARD_SYNC_START_BLOCK uint64 = 9999999999
	// RESYNC_START_BLOCK is the sentinel used when a full resync restarts from the top
	RESYNC_START_BLOCK uint64 = 999999999
	// ASCENDING_END_BLOCK is the open end block of an ascending page request
	ASCENDING_END_BLOCK uint64 = 999999999

	// MIN_FUNCTION_INPUT_LENGTH is the length of "0x" plus a 4-byte selector
	MIN_FUNCTION_INPUT_LENGTH = 10

	// RESET_MARKER_KEY_PREFIX prefixes the key/value entries holding reset marker versions
	RESET_MARKER_KEY_PREFIX = "reset_marker:"
)
