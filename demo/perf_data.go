/*
SPDX-License-Identifier: Apache-2.0

Copyright 2024 The Taxinomia Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    https://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package demo

import (
	"fmt"

	"github.com/google/colframe/core/columns"
	"github.com/google/colframe/core/logging"
	"github.com/google/colframe/core/tables"
)

// Performance test configuration - easily modifiable cardinality
const (
	PERF_NUM_TRANSACTIONS = 1_000_000
	PERF_NUM_USERS        = 800_000 // High cardinality
	PERF_NUM_CATEGORIES   = 200     // Low cardinality
)

// CreatePerfTransactionsTable creates a transaction table of n rows for
// performance testing. Every 97th amount is missing.
func CreatePerfTransactionsTable(n int) (*tables.Table, error) {
	logging.Logger().Debug("creating performance transactions table", "rows", n)

	txnIDCol := columns.NewIntColumn("txn_id")
	userIDCol := columns.NewIntColumn("user_id")
	categoryIDCol := columns.NewIntColumn("category_id")
	amountCol := columns.NewDoubleColumn("amount")
	statusCol := columns.NewStringColumn("status")

	// Status values for cycling
	statuses := []string{"pending", "completed", "cancelled", "processing"}

	// Generate data directly into columns
	for i := 0; i < n; i++ {
		txnIDCol.Append(int64(i))
		userIDCol.Append(int64(i % PERF_NUM_USERS))

		// Category ID: heavy reuse (low cardinality), category 0 more common
		categoryID := i % PERF_NUM_CATEGORIES
		if i%7 == 0 {
			categoryID = 0
		}
		categoryIDCol.Append(int64(categoryID))

		// Amount: deterministic but varied
		if i%97 == 0 {
			amountCol.AppendMissing()
		} else {
			amountCol.Append(float64(10+(i%1000)) + 0.25)
		}

		statusCol.Append(statuses[i%len(statuses)])
	}

	return tables.NewTable("transactions_perf", txnIDCol, userIDCol, categoryIDCol, amountCol, statusCol)
}

// CreatePerfUsersTable creates a user table of n rows.
func CreatePerfUsersTable(n int) (*tables.Table, error) {
	logging.Logger().Debug("creating performance users table", "rows", n)

	userIDCol := columns.NewIntColumn("user_id")
	usernameCol := columns.NewStringColumn("username")
	countryCol := columns.NewStringColumn("country")
	signupYearCol := columns.NewIntColumn("signup_year")

	// Country values for distribution
	countries := []string{"US", "UK", "CA", "AU", "DE", "FR", "JP", "CN", "IN", "BR"}

	for i := 0; i < n; i++ {
		userIDCol.Append(int64(i))
		usernameCol.Append(fmt.Sprintf("user_%d", i))
		countryCol.Append(countries[i%len(countries)])
		signupYearCol.Append(int64(2020 + (i % 5))) // Years 2020-2024
	}

	return tables.NewTable("users_perf", userIDCol, usernameCol, countryCol, signupYearCol)
}
