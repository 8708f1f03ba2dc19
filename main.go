// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/Ner-Kun/omniboot/cmd/omniboot"

func main() {
	cmd.Execute()
}
