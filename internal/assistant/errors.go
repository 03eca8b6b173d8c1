package assistant

import (
	"fmt"

	"personal-assistant/internal/model"
)

var ErrEmptyInput = fmt.Errorf("%w: input is empty", model.ErrAssistant)
