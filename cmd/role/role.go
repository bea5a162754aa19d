package role

import (
	"github.com/BerryBytes/aws-assume-role/internal/config"
	"github.com/BerryBytes/aws-assume-role/internal/sts"
	"github.com/BerryBytes/aws-assume-role/utils/common"
	promptutils "github.com/BerryBytes/aws-assume-role/utils/prompt"
)

// Dependencies carries the collaborators the role verbs need. Commands
// receive it fully built so tests can substitute any piece.
type Dependencies struct {
	Store    config.RoleStore
	Assumer  sts.Assumer
	Prompter promptutils.Prompter
	Executor common.CommandExecutor
}
