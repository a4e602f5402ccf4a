package schema

// ClickHouseTableDefinitions creates the lead and event tables.
// Rows are never updated in place: every save inserts a new version and reads use FINAL.
var ClickHouseTableDefinitions = []string{
	`CREATE TABLE IF NOT EXISTS leads (
		id String,
		domain_id String,
		name Nullable(String),
		first_name Nullable(String),
		last_name Nullable(String),
		email Nullable(String),
		phone Nullable(String),
		ip Nullable(String),
		user_agent Nullable(String),
		city Nullable(String),
		state Nullable(String),
		zipcode Nullable(String),
		country_name Nullable(String),
		country_code Nullable(String),
		first_fbc Nullable(String),
		fbc Nullable(String),
		fbp Nullable(String),
		utm_source Nullable(String),
		utm_medium Nullable(String),
		utm_campaign Nullable(String),
		utm_id Nullable(String),
		utm_term Nullable(String),
		utm_content Nullable(String),
		first_utm_source Nullable(String),
		first_utm_medium Nullable(String),
		first_utm_campaign Nullable(String),
		first_utm_id Nullable(String),
		first_utm_term Nullable(String),
		first_utm_content Nullable(String),
		gender Nullable(String),
		dob Nullable(String),
		external_id Nullable(String),
		created_at DateTime64(3, 'UTC'),
		updated_at DateTime64(3, 'UTC')
	) ENGINE = ReplacingMergeTree(updated_at)
	ORDER BY id`,
	`CREATE TABLE IF NOT EXISTS events (
		id String,
		domain_id String,
		lead_id Nullable(String),
		conversion_id Nullable(String),
		event_id Nullable(String),
		event_name String,
		event_time DateTime64(3, 'UTC'),
		event_url Nullable(String),
		page_id Nullable(String),
		page_title Nullable(String),
		product_id Nullable(String),
		product_name Nullable(String),
		product_value Nullable(Float64),
		predicted_ltv Nullable(Float64),
		offer_ids Nullable(String),
		content_name Nullable(String),
		content_ids Array(String),
		currency Nullable(String),
		value Nullable(Float64),
		traffic_source Nullable(String),
		utm_source Nullable(String),
		utm_medium Nullable(String),
		utm_campaign Nullable(String),
		utm_id Nullable(String),
		utm_term Nullable(String),
		utm_content Nullable(String),
		src Nullable(String),
		sck Nullable(String),
		geo_ip Nullable(String),
		geo_device Nullable(String),
		geo_country Nullable(String),
		geo_state Nullable(String),
		geo_city Nullable(String),
		geo_zipcode Nullable(String),
		geo_currency Nullable(String),
		first_fbc Nullable(String),
		fbc Nullable(String),
		fbp Nullable(String),
		facebook_request Nullable(String),
		facebook_response Nullable(String),
		created_at DateTime64(3, 'UTC'),
		version UInt64
	) ENGINE = ReplacingMergeTree(version)
	PARTITION BY toYYYYMM(created_at)
	ORDER BY id`,
}

// ClickHouseTableNames lists the column store tables
var ClickHouseTableNames = []string{
	"leads",
	"events",
}
