package httperr

import "errors"

// BusinessError é regra de negócio violada fora do motor de agenda
// (schedule desabilitado, slot no passado, start fora da grade). O Code
// em snake_case vai direto para o cliente.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
