package graphql

import "fmt"

const (
	orderSummaryFields = `
		id
		type
		status
		name`

	requestSummaryFields = `
		id
		type
		time
		orderer {
			id
			displayName
			mobileNumber
			email
			address
		}
		store {
			id
			name
			registrationNumber
			address
			mobileNumber
			email
		}
		price
		paid`

	orderDetailFields = orderSummaryFields + `
		time
		services {
			id
			type
			name
			assignedPrice
			done
		}
		imagesBefore {
			id
			type
			url
		}
		imagesAfter {
			id
			type
			url
		}
		events {
			type
			time
			_status
		}`

	requestDetailFields = requestSummaryFields + `
		status
		products {
			id
			name
			quantity
			assignedPrice
		}
		invoice {
			time
			number
		}
		payments {
			type
			time
			amount
			reference
		}
		pickUpTime
		remark`

	lockerUnitFields = `
		id
		locker {
			id
			name
			rows
			columns
			units {
				id
				number
				row
				column
			}
		}`

	branchFields = `
		id
		name
		registrationNumber
		address
		mobileNumber
		email`

	customerFields = `
		id
		displayName
		mobileNumber
		email
		address
		employee`

	catalogPriceFields = `
		price {
			type
			amount
		}`
)

// mutation renders `mutation { field(args) { selection } }`. An empty
// selection is for fields that return a scalar.
func mutation(field string, args Arguments, selection string) string {
	return operation("mutation", "", field, args, selection)
}

// uploadMutation declares upload variables in the operation header.
func uploadMutation(name, variables, field string, args Arguments, selection string) string {
	return operation("mutation", name+"("+variables+")", field, args, selection)
}

func query(field string, args Arguments, selection string) string {
	return operation("query", "", field, args, selection)
}

func operation(kind, header, field string, args Arguments, selection string) string {
	call := field
	if rendered := args.String(); rendered != "" {
		call = fmt.Sprintf("%s(%s)", field, rendered)
	}
	if selection != "" {
		call = fmt.Sprintf("%s {%s\n\t}", call, selection)
	}
	if header != "" {
		return fmt.Sprintf("%s %s {\n\t%s\n}", kind, header, call)
	}
	return fmt.Sprintf("%s {\n\t%s\n}", kind, call)
}
