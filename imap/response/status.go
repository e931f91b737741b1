package response

import "fmt"

// Completion is a tagged status response. It terminates the response of the command with the same tag.
type Completion struct {
	parsedBase

	Tag    string
	Status StatusType
	Code   Code
	Info   string
}

func (r *Completion) String() string {
	return fmt.Sprintf("Completion: Tag = %v, Status = %v, Code = %v, Info = %q", r.Tag, r.Status, r.Code, r.Info)
}

// Data is an untagged status response.
type Data struct {
	parsedBase

	Status StatusType
	Code   Code
	Info   string
}

func (r *Data) String() string {
	return fmt.Sprintf("Data: Status = %v, Code = %v, Info = %q", r.Status, r.Code, r.Info)
}

// Continuation is a command continuation request.
type Continuation struct {
	parsedBase

	Info string
}

func (r *Continuation) String() string {
	return fmt.Sprintf("Continuation: Info = %q", r.Info)
}

func newStatusResponse(tag string, status StatusType, code Code, info string) Parsed {
	if tag == "*" {
		return &Data{Status: status, Code: code, Info: info}
	}

	return &Completion{Tag: tag, Status: status, Code: code, Info: info}
}
