package payment

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validInput() *CheckoutInput {
	return &CheckoutInput{
		Name:            "Asha Patel",
		Mobile:          "9876543210",
		Email:           "asha@example.com",
		State:           "Rajasthan",
		City:            "Jaipur",
		Country:         "India",
		HouseNumber:     "12-B Shanti Nagar",
		Landmark:        "Near temple",
		Pincode:         "302001",
		TotalAmount:     1500,
		PurchasePrice:   1100,
		ProductQuantity: 1,
	}
}

func TestValidateCheckoutInput_OK(t *testing.T) {
	require.NoError(t, validateCheckoutInput(validInput()))
}

func TestValidateCheckoutInput_MissingFieldReportsJSONName(t *testing.T) {
	in := validInput()
	in.Email = ""
	err := validateCheckoutInput(in)
	require.Error(t, err)
	require.Contains(t, err.Error(), "missing required field: user_email")

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestValidateCheckoutInput_AmountBounds(t *testing.T) {
	in := validInput()
	in.TotalAmount = 0
	err := validateCheckoutInput(in)
	require.Error(t, err)
	// zero trips the required tag before the range check
	require.Contains(t, err.Error(), "user_total_amount")

	in = validInput()
	in.TotalAmount = 100001
	err = validateCheckoutInput(in)
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid amount")
}

func TestValidateCheckoutInput_MobileFormat(t *testing.T) {
	for _, mobile := range []string{"12345", "98765432101", "98765abcde", "+919876543210"} {
		in := validInput()
		in.Mobile = mobile
		err := validateCheckoutInput(in)
		require.Error(t, err, "mobile %q should be rejected", mobile)
		require.Contains(t, err.Error(), "invalid mobile number format")
	}
}
