package hamming

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nathanhack/hamming74/cmd/internal/tools"
	"github.com/nathanhack/hamming74/linearblock/hamming"
	"github.com/spf13/cobra"
)

var HammingRun = func(cmd *cobra.Command, args []string) {
	ctx := tools.SignalContext()

	code, err := hamming.New(ctx)
	if err != nil {
		fmt.Println("Unable to create hamming code: ", err)
		return
	}

	bs, err := json.Marshal(code.Block())
	if err != nil {
		fmt.Println("Unable to serialize the hamming code: ", err)
		return
	}

	err = os.WriteFile(args[0], bs, 0644)
	if err != nil {
		fmt.Println("unable to write file: ", err)
	}
}
