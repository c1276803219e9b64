package web

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

func TestValidAmount(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("amount", ValidAmount))
	require.NoError(t, v.RegisterValidation("nonnegamount", ValidNonNegativeAmount))

	type request struct {
		Amount string `validate:"required,amount"`
		Buffer string `validate:"nonnegamount"`
	}

	testCases := []struct {
		name    string
		req     request
		wantErr bool
	}{
		{name: "OK", req: request{Amount: "60.5", Buffer: "0"}},
		{name: "Zero", req: request{Amount: "0", Buffer: "0"}, wantErr: true},
		{name: "Negative", req: request{Amount: "-1", Buffer: "0"}, wantErr: true},
		{name: "TooPrecise", req: request{Amount: "1.0000001", Buffer: "0"}, wantErr: true},
		{name: "NegativeBuffer", req: request{Amount: "1", Buffer: "-1"}, wantErr: true},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			err := v.Struct(tc.req)
			if tc.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
		})
	}
}

func TestBindingErrorMsg(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("amount", ValidAmount))

	type request struct {
		Amount string `validate:"required,amount"`
	}

	err := v.Struct(request{Amount: "x"})
	require.Equal(t, "Amount must be a positive amount with at most 6 decimals", BindingErrorMsg(err))

	err = v.Struct(request{})
	require.Equal(t, "Amount field is required", BindingErrorMsg(err))

	require.Equal(t, "EOF", BindingErrorMsg(errors.New("EOF")))
}

func TestError(t *testing.T) {
	require.Equal(t, Response{Error: "boom"}, Error(errors.New("boom")))
}
