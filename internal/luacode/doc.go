// Copyright (C) 1994-2024 Lua.org, PUC-Rio.
// Copyright 2025 The zb Authors
// SPDX-License-Identifier: MIT

/*
Package luacode compiles Lua expressions to virtual machine code.

[Parse] converts text into an [Expr] syntax tree
and [Compile] converts the tree into a [Function].
Each operator is compiled by looking up its entry
in a [Tables] value built by [NewTables].
[Categorize] decides which family of entries a binary operator uses.
Entries choose between register and constant variants of an [OpCode]
and evaluate operations on literals ahead of time.

# Provenance

The instruction encoding and the code generation strategy
follow Lua 5.4.7, specifically:

  - lcode.c
  - lparser.c
  - lopcodes.h
  - lvm.c (for the arithmetic semantics)

Unlike upstream Lua, every operator has a separate opcode
for each combination of register and constant operands,
and comparisons never exchange their operands.

# Lua License

Copyright (C) 1994-2024 Lua.org, PUC-Rio.

Permission is hereby granted, free of charge, to any person obtaining
a copy of this software and associated documentation files (the
"Software"), to deal in the Software without restriction, including
without limitation the rights to use, copy, modify, merge, publish,
distribute, sublicense, and/or sell copies of the Software, and to
permit persons to whom the Software is furnished to do so, subject to
the following conditions:

The above copyright notice and this permission notice shall be
included in all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
IN NO EVENT SHALL THE AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY
CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT,
TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN CONNECTION WITH THE
SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
*/
package luacode
