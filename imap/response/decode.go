package response

import (
	"fmt"

	goimap "github.com/emersion/go-imap"
)

type decoder func(fields []any) (Parsed, error)

var decoders = map[string]decoder{
	"CAPABILITY": decodeCapabilityData,
	"LIST":       decodeList(false),
	"LSUB":       decodeList(true),
	"STATUS":     decodeStatus,
	"FLAGS":      decodeFlags,
	"SEARCH":     decodeSearch,
	"EXISTS":     decodeExists,
	"RECENT":     decodeRecent,
	"EXPUNGE":    decodeExpunge,
	"FETCH":      decodeFetch,
}

func decode(resp goimap.Resp) (Parsed, error) {
	switch resp := resp.(type) {
	case *goimap.ContinuationReq:
		return &Continuation{Info: resp.Info}, nil

	case *goimap.StatusResp:
		code, err := decodeCode(resp.Code, resp.Arguments)
		if err != nil {
			return nil, err
		}

		return newStatusResponse(resp.Tag, resp.Type, code, resp.Info), nil

	case *goimap.DataResp:
		return decodeData(resp)

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedResponse, resp)
	}
}

func decodeData(resp *goimap.DataResp) (Parsed, error) {
	// A status response without text ("A1 OK\r\n") is not recognised as such by the lexer.
	if status, ok := bareStatus(resp.Fields); ok {
		return newStatusResponse(resp.Tag, status, nil, ""), nil
	}

	if resp.Tag != "*" {
		return nil, fmt.Errorf("%w: tagged data response", ErrUnsupportedResponse)
	}

	name, fields, ok := goimap.ParseNamedResp(resp)
	if !ok {
		return nil, fmt.Errorf("%w: data response has no name", ErrMalformedResponse)
	}

	if dec, ok := decoders[name]; ok {
		return dec(fields)
	}

	frozen, err := freezeFields(fields)
	if err != nil {
		return nil, err
	}

	return &Other{Name: name, Fields: frozen}, nil
}

func bareStatus(fields []any) (StatusType, bool) {
	if len(fields) != 1 {
		return "", false
	}

	name, ok := fields[0].(string)
	if !ok {
		return "", false
	}

	switch status := StatusType(name); status {
	case StatusOK, StatusNo, StatusBad, StatusPreauth, StatusBye:
		return status, true

	default:
		return "", false
	}
}
