package main

import "context"

func (cli *commandLine) resetPassword(uname, pwd string) error {
	return cli.acctSvc.ResetPassword(context.Background(), uname, pwd)
}
