package db

import (
	migrate "github.com/rubenv/sql-migrate"
)

// migrations define the SQL schema.  New schema changes get appended as new
// migrations, never edited in place, so that deployed databases can be
// upgraded by running the pending ones.
var migrations = &migrate.MemoryMigrationSource{
	Migrations: []*migrate.Migration{
		{
			Id: "0001",
			Up: []string{`
CREATE TABLE block (
    eth_block_num BIGINT PRIMARY KEY,
    timestamp TIMESTAMP WITHOUT TIME ZONE NOT NULL,
    hash BYTEA NOT NULL
);

CREATE TABLE token (
    eth_addr BYTEA PRIMARY KEY,
    name VARCHAR(20) NOT NULL,
    symbol VARCHAR(10) NOT NULL,
    decimals INT NOT NULL,
    usd NUMERIC,
    usd_update TIMESTAMP WITHOUT TIME ZONE
);

CREATE TABLE rate_update (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    numerator VARCHAR(78) NOT NULL,
    denominator VARCHAR(78) NOT NULL
);

CREATE TABLE deposit (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    from_addr BYTEA NOT NULL,
    amount VARCHAR(78) NOT NULL,
    tx_hash BYTEA NOT NULL
);

CREATE TABLE withdrawal (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    to_addr BYTEA NOT NULL,
    amount VARCHAR(78) NOT NULL
);

CREATE TABLE conversion (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    from_addr BYTEA NOT NULL,
    amount_a VARCHAR(78) NOT NULL,
    amount_b VARCHAR(78) NOT NULL,
    tx_hash BYTEA NOT NULL
);

CREATE TABLE pause_event (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    account BYTEA NOT NULL,
    paused BOOLEAN NOT NULL
);

CREATE TABLE owner_update (
    item_id SERIAL PRIMARY KEY,
    eth_block_num BIGINT NOT NULL REFERENCES block (eth_block_num) ON DELETE CASCADE,
    previous_owner BYTEA NOT NULL,
    new_owner BYTEA NOT NULL
);

CREATE TABLE converter_vars (
    eth_block_num BIGINT PRIMARY KEY REFERENCES block (eth_block_num) ON DELETE CASCADE,
    rate_num VARCHAR(78) NOT NULL,
    rate_denom VARCHAR(78) NOT NULL,
    owner_addr BYTEA NOT NULL,
    paused BOOLEAN NOT NULL
);

INSERT INTO block (
    eth_block_num,
    timestamp,
    hash
) VALUES (
    0,
    '2015-07-30 03:26:13',
    decode('D4E56740F876AEF8C010B86A40D5F56745A118D0906A34E69AEC8C0DB1CB8FA3', 'hex')
);
`},
			Down: []string{`
DROP TABLE converter_vars;
DROP TABLE owner_update;
DROP TABLE pause_event;
DROP TABLE conversion;
DROP TABLE withdrawal;
DROP TABLE deposit;
DROP TABLE rate_update;
DROP TABLE token;
DROP TABLE block;
`},
		},
	},
}
